package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor is a mock implementation of pagesift.FragmentExtractor.
type FragmentExtractor struct {
	ExtractFn func(html string, baseURL string) (*pagesift.Page, error)
}

func (e *FragmentExtractor) Extract(html string, baseURL string) (*pagesift.Page, error) {
	return e.ExtractFn(html, baseURL)
}
