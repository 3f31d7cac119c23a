package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagesift.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
