package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.ExtractionStore = (*ExtractionStore)(nil)

// ExtractionStore is a mock implementation of pagesift.ExtractionStore.
type ExtractionStore struct {
	SaveExtractionFn      func(ctx context.Context, ex *pagesift.StoredExtraction) error
	FindExtractionByKeyFn func(ctx context.Context, key pagesift.Key) (*pagesift.StoredExtraction, error)
	FindExtractionsFn     func(ctx context.Context) ([]*pagesift.StoredExtraction, error)
	DeleteExtractionFn    func(ctx context.Context, key pagesift.Key) error
}

func (s *ExtractionStore) SaveExtraction(ctx context.Context, ex *pagesift.StoredExtraction) error {
	return s.SaveExtractionFn(ctx, ex)
}

func (s *ExtractionStore) FindExtractionByKey(ctx context.Context, key pagesift.Key) (*pagesift.StoredExtraction, error) {
	return s.FindExtractionByKeyFn(ctx, key)
}

func (s *ExtractionStore) FindExtractions(ctx context.Context) ([]*pagesift.StoredExtraction, error) {
	return s.FindExtractionsFn(ctx)
}

func (s *ExtractionStore) DeleteExtraction(ctx context.Context, key pagesift.Key) error {
	return s.DeleteExtractionFn(ctx, key)
}
