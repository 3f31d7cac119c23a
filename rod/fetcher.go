// Package rod provides the rendered fetch tier: full Chrome navigation for
// pages whose content only exists after JavaScript runs. It implements
// pagesift.Fetcher so the strategy selector can escalate to it
// transparently.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/go-rod/rod/lib/proto"
)

// Defaults for the rendered tier. Rendering gets a longer leash than the
// lightweight tier because a full navigation includes script execution.
const (
	// DefaultRenderTimeout bounds one navigate-and-render cycle.
	DefaultRenderTimeout = 30 * time.Second

	// DefaultSettleDelay is the wait after the load event, giving
	// client-side frameworks time to hydrate before the DOM is read.
	DefaultSettleDelay = 2 * time.Second
)

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	settle  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page render timeout.
// Defaults to DefaultRenderTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleDelay sets the post-load settle wait.
// Defaults to DefaultSettleDelay if not specified.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// NewFetcher creates a new Fetcher backed by a managed headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	return newFetcher(manager, opts...), nil
}

// newFetcher wires a Fetcher to an existing manager. Split out for tests.
func newFetcher(manager *BrowserManager, opts ...Option) *Fetcher {
	f := &Fetcher{
		manager: manager,
		timeout: DefaultRenderTimeout,
		settle:  DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL, waits for the page to load and settle, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Give client-side rendering time to finish after the load event.
	select {
	case <-ctx.Done():
		return "", pagesift.Errorf(pagesift.ETIMEOUT, "render timed out for %s", url)
	case <-time.After(f.settle):
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
