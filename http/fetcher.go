// Package http provides the lightweight fetch tier: a plain HTTP GET with
// bounded retries, a redirect cap, and an HTML-only content-type gate.
// Failures are classified into the pagesift error taxonomy so the strategy
// selector can decide whether a browser render is worth attempting.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagesift"
)

// Defaults for the lightweight tier.
const (
	// DefaultFetchTimeout bounds each individual fetch attempt.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxRetries is the number of retries after the initial attempt.
	DefaultMaxRetries = 2

	// DefaultBaseDelay is the unit of the linear backoff: attempt n waits
	// n × base before the next try.
	DefaultBaseDelay = 500 * time.Millisecond

	// maxRedirectHops caps redirect following to avoid loops.
	maxRedirectHops = 5
)

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript; pages that depend on it are handled by
// the rendered tier.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	retries   int
	baseDelay time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets the number of retries after the initial attempt.
// Defaults to DefaultMaxRetries if not specified.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = n
	}
}

// WithBaseDelay sets the linear backoff unit.
// Defaults to DefaultBaseDelay if not specified.
func WithBaseDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.baseDelay = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new lightweight Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		retries:   DefaultMaxRetries,
		baseDelay: DefaultBaseDelay,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirectHops {
				return fmt.Errorf("stopped after %d redirects", maxRedirectHops)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML at url, retrying failed attempts with a
// linearly increasing delay. A non-HTML response is a hard failure and is
// never retried. The error returned after retries exhaust carries the
// classification code for the final failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.retries+1; attempt++ {
		html, err := f.fetchOnce(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) || attempt > f.retries {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.baseDelay * time.Duration(attempt)):
		}
	}
	return "", lastErr
}

// fetchOnce performs a single GET attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "invalid request for %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable:
		return "", pagesift.Errorf(pagesift.EBLOCKED, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", pagesift.Errorf(pagesift.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	if ct := resp.Header.Get("Content-Type"); !isHTMLContentType(ct) {
		return "", pagesift.Errorf(pagesift.ECONTENTTYPE, "non-HTML content type %q for %s", ct, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	if strings.TrimSpace(string(body)) == "" {
		return "", pagesift.Errorf(pagesift.EEMPTY, "empty response body for %s", url)
	}

	return string(body), nil
}

// Close releases resources. The lightweight fetcher holds none.
func (f *Fetcher) Close() error {
	return nil
}

// retryable reports whether a failed attempt is worth repeating. A
// non-HTML response never changes on retry, and a malformed request never
// becomes valid.
func retryable(err error) bool {
	switch pagesift.ErrorCode(err) {
	case pagesift.ECONTENTTYPE, pagesift.EINVALID:
		return false
	}
	return true
}

// isHTMLContentType reports whether a Content-Type header names an HTML
// document. A missing header is accepted; plenty of static servers omit it
// for pages that are perfectly fetchable.
func isHTMLContentType(ct string) bool {
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}
