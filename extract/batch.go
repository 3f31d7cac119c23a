package extract

import (
	"context"
	"time"

	"github.com/fwojciec/pagesift"
)

// Deduper filters out locators already processed in this run.
type Deduper interface {
	// Seen marks the locator as processed and reports whether it was
	// already marked.
	Seen(url string) bool
}

// BatchItem pairs a locator with its extraction outcome.
type BatchItem struct {
	URL    string           `json:"url"`
	Result *pagesift.Result `json:"result"`
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Items     []BatchItem
	Succeeded int
	Failed    int
	Skipped   int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Result    *pagesift.Result
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Batch runs extractions over a list of locators, strictly one at a
// time. Pages are never fetched concurrently; ordering and pacing keep
// the load on target sites predictable.
type Batch struct {
	Runner *Runner

	// Limiter paces requests per domain. Optional.
	Limiter pagesift.DomainLimiter

	// Dedupe skips locators already seen in this run. Optional.
	Dedupe Deduper

	// Delay is the pause inserted between consecutive items.
	Delay time.Duration

	// Force bypasses the cache for every item.
	Force bool
}

// Run extracts every locator in order. Individual failures are recorded
// and the run continues; the only returned error is context
// cancellation.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) (*BatchResult, error) {
	total := len(urls)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	result := &BatchResult{}
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if b.Dedupe != nil {
			if norm, err := pagesift.NormalizeLocator(url); err == nil && b.Dedupe.Seen(norm) {
				result.Skipped++
				notify(progress, ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, URL: url})
				continue
			}
		}

		if b.Limiter != nil {
			if err := b.Limiter.Wait(ctx, pagesift.LocatorDomain(url)); err != nil {
				return result, err
			}
		}

		res := b.Runner.ExtractURL(ctx, url, b.Force)
		result.Items = append(result.Items, BatchItem{URL: url, Result: res})

		eventType := ProgressCompleted
		if res.Success {
			result.Succeeded++
		} else {
			result.Failed++
			eventType = ProgressFailed
		}
		notify(progress, ProgressEvent{Type: eventType, Completed: i + 1, Total: total, URL: url, Result: res})

		if b.Delay > 0 && i < total-1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(b.Delay):
			}
		}
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
