package pagesift

import (
	"context"
	"time"
)

// Method identifies which fetch tier produced a result.
type Method string

// Fetch tiers.
const (
	MethodLightweight Method = "lightweight"
	MethodRendered    Method = "rendered"
)

// Result is the outcome of one extraction, success or failure. Fetch-stage
// failures are reported through this shape rather than raised, so batch
// processing continues past individual locators.
type Result struct {
	Success        bool          `json:"success"`
	Method         Method        `json:"method,omitempty"`
	ProcessingTime time.Duration `json:"processingTime"`
	Cached         bool          `json:"cached,omitempty"`

	Data  *ExtractedData `json:"extractedData,omitempty"`
	Error string         `json:"error,omitempty"`

	// ShouldFallbackToBrowser hints that a browser render might succeed
	// where the lightweight fetch failed. It is only set when no rendered
	// tier was available to escalate to internally.
	ShouldFallbackToBrowser bool `json:"shouldFallbackToBrowser,omitempty"`
}

// Page is one fetched page before filtering: the title from its metadata
// plus the ordered fragment sequence derived from its markup.
type Page struct {
	Title     string
	Fragments Sequence
}

// Fetcher retrieves raw HTML from a locator.
// Implementations decide transport: plain HTTP or full browser rendering.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FragmentExtractor converts page markup into the ordered fragment
// sequence consumed by the filtering pipeline. baseURL resolves relative
// links inside the markup.
type FragmentExtractor interface {
	Extract(html string, baseURL string) (*Page, error)
}

// StoredExtraction is a completed extraction persisted under its locator
// key.
type StoredExtraction struct {
	ID             string             `json:"id"`
	URLHash        string             `json:"urlHash"`
	Domain         string             `json:"domain"`
	URL            string             `json:"url"`
	Title          string             `json:"title"`
	Blocks         []FilteredFragment `json:"blocks"`
	UniqueBlocks   int                `json:"uniqueBlocks"`
	EstimatedWords int                `json:"estimatedWords"`
	Method         Method             `json:"method"`
	QualityScore   float64            `json:"qualityScore"`
	FetchedAt      time.Time          `json:"fetchedAt"`
}

// Key returns the cache key the extraction is stored under.
func (e *StoredExtraction) Key() Key {
	return Key{URLHash: e.URLHash, Domain: e.Domain}
}

// Validate returns an error if the extraction contains invalid fields.
func (e *StoredExtraction) Validate() error {
	if e.URLHash == "" {
		return Errorf(EINVALID, "extraction URL hash required")
	}
	if e.Domain == "" {
		return Errorf(EINVALID, "extraction domain required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "extraction URL required")
	}
	return nil
}

// ExtractionStore caches completed extractions by locator key. Writes for
// the same key are last-write-wins; the store performs no locking against
// concurrent writers.
type ExtractionStore interface {
	// SaveExtraction stores an extraction, replacing any previous entry
	// under the same key.
	SaveExtraction(ctx context.Context, ex *StoredExtraction) error

	// FindExtractionByKey retrieves the most recent extraction for a key.
	// Returns ENOTFOUND if no entry exists.
	FindExtractionByKey(ctx context.Context, key Key) (*StoredExtraction, error)

	// FindExtractions retrieves all stored extractions, most recent first.
	FindExtractions(ctx context.Context) ([]*StoredExtraction, error)

	// DeleteExtraction removes the entry for a key.
	// Returns ENOTFOUND if no entry exists.
	DeleteExtraction(ctx context.Context, key Key) error
}

// SitemapService discovers locators for batch extraction from a site's
// sitemap.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter paces outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
