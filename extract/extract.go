// Package extract orchestrates main-content extraction: tiered fetching,
// fragment filtering, and result caching. Fetch failures surface inside
// results rather than as errors, so batch runs continue past bad pages.
package extract

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesift"
)

// Runner coordinates one extraction from locator to filtered result.
type Runner struct {
	// Lightweight is the plain HTTP fetch tier. Required.
	Lightweight pagesift.Fetcher

	// Rendered is the browser fetch tier. When nil, failures that a
	// render might fix are reported with a fallback hint instead of
	// escalating.
	Rendered pagesift.Fetcher

	// Fragments converts fetched markup into the fragment sequence.
	Fragments pagesift.FragmentExtractor

	// Store caches completed extractions. Optional; writes are
	// best-effort and never fail an extraction.
	Store pagesift.ExtractionStore

	// NeedsRender reports whether fetched markup shows a
	// script-dependency signature and needs the rendered tier. Optional.
	NeedsRender func(html string) bool
}

// ExtractURL extracts the main content of the page at rawurl. It never
// returns an error: every failure mode is reported through the result.
// When force is true any cached entry is ignored and overwritten.
func (r *Runner) ExtractURL(ctx context.Context, rawurl string, force bool) *pagesift.Result {
	start := time.Now()

	key, err := pagesift.LocatorKey(rawurl)
	if err != nil {
		return failure(start, "", err, false)
	}
	locator, err := pagesift.NormalizeLocator(rawurl)
	if err != nil {
		return failure(start, "", err, false)
	}

	if r.Store != nil && !force {
		if cached, err := r.Store.FindExtractionByKey(ctx, key); err == nil {
			return &pagesift.Result{
				Success:        true,
				Method:         cached.Method,
				ProcessingTime: time.Since(start),
				Cached:         true,
				Data:           dataFromStored(cached),
			}
		}
	}

	html, method, err := r.fetch(ctx, locator)
	if err != nil {
		hint := r.Rendered == nil && escalatable(err)
		return failure(start, method, err, hint)
	}

	page, err := r.Fragments.Extract(html, locator)
	if err != nil {
		return failure(start, method, err, false)
	}

	data := pagesift.FilterContent(page.Title, page.Fragments)

	if r.Store != nil {
		// Cache write is best-effort: a failed save never fails the
		// extraction itself.
		_ = r.Store.SaveExtraction(ctx, storedFrom(key, locator, method, data))
	}

	return &pagesift.Result{
		Success:        true,
		Method:         method,
		ProcessingTime: time.Since(start),
		Data:           data,
	}
}

// fetch runs the tiered fetch: lightweight first, escalating to the
// rendered tier on failures a browser might fix or on script-dependent
// markup.
func (r *Runner) fetch(ctx context.Context, locator string) (string, pagesift.Method, error) {
	html, err := r.Lightweight.Fetch(ctx, locator)

	if err == nil {
		if r.NeedsRender == nil || !r.NeedsRender(html) {
			return html, pagesift.MethodLightweight, nil
		}
		err = pagesift.Errorf(pagesift.EEMPTY, "page requires JavaScript rendering")
	}

	if r.Rendered == nil || !escalatable(err) {
		return "", pagesift.MethodLightweight, err
	}

	html, err = r.Rendered.Fetch(ctx, locator)
	if err != nil {
		return "", pagesift.MethodRendered, err
	}
	return html, pagesift.MethodRendered, nil
}

// escalatable reports whether a fetch failure is worth retrying in a
// browser: timeouts, empty responses, and bot blocks. Network-level
// failures like DNS errors, refused connections, and bad certificates
// fail identically in a browser, and non-HTML responses are a property
// of the resource itself.
func escalatable(err error) bool {
	switch pagesift.ErrorCode(err) {
	case pagesift.ETIMEOUT, pagesift.EEMPTY, pagesift.EBLOCKED:
		return true
	}
	return false
}

// failure builds a failed result from an error.
func failure(start time.Time, method pagesift.Method, err error, fallbackHint bool) *pagesift.Result {
	return &pagesift.Result{
		Success:                 false,
		Method:                  method,
		ProcessingTime:          time.Since(start),
		Error:                   pagesift.ErrorMessage(err),
		ShouldFallbackToBrowser: fallbackHint,
	}
}

// storedFrom converts a filtered extraction into its cacheable form.
func storedFrom(key pagesift.Key, locator string, method pagesift.Method, data *pagesift.ExtractedData) *pagesift.StoredExtraction {
	quality := 0.0
	if data.TotalWords > 0 {
		quality = float64(data.MainContentWords) / float64(data.TotalWords)
	}
	return &pagesift.StoredExtraction{
		URLHash:        key.URLHash,
		Domain:         key.Domain,
		URL:            locator,
		Title:          data.Title,
		Blocks:         data.Blocks,
		UniqueBlocks:   uniqueBlocks(data.Blocks),
		EstimatedWords: data.TotalWords,
		Method:         method,
		QualityScore:   quality,
	}
}

// dataFromStored rebuilds the filtered output shape from a cache entry.
func dataFromStored(ex *pagesift.StoredExtraction) *pagesift.ExtractedData {
	data := &pagesift.ExtractedData{
		Title:      ex.Title,
		Blocks:     ex.Blocks,
		TotalItems: len(ex.Blocks),
	}
	for _, b := range ex.Blocks {
		data.TotalWords += b.WordCount
		if b.IsMainContent {
			data.MainContentBlocks++
			data.MainContentWords += b.WordCount
		}
	}
	return data
}

// uniqueBlocks counts distinct blocks by hashing their visible text.
func uniqueBlocks(blocks []pagesift.FilteredFragment) int {
	seen := make(map[uint64]struct{}, len(blocks))
	for _, b := range blocks {
		seen[xxhash.Sum64String(b.Title+"\x00"+b.Content+"\x00"+b.Image)] = struct{}{}
	}
	return len(seen)
}
