package extract

import (
	"context"
	"sync"

	"github.com/fwojciec/pagesift"
	"golang.org/x/time/rate"
)

var _ pagesift.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces batch items per domain using token buckets. Each
// domain gets its own limiter, so a batch mixing several sites slows
// down only where the same site repeats.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests per second limit. Each domain gets a burst of 1, so requests
// within a domain are strictly paced.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
