package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited spaces outbound calls. It never retries: a wait that is
// cancelled fails the call.
type RateLimited struct {
	next    Generator
	limiter *rate.Limiter
}

func WithRateLimit(next Generator, limiter *rate.Limiter) Generator {
	if limiter == nil {
		return next
	}
	return &RateLimited{next: next, limiter: limiter}
}

func (r *RateLimited) Name() string {
	return r.next.Name()
}

func (r *RateLimited) Generate(ctx context.Context, req Request) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return r.next.Generate(ctx, req)
}

// NewLimiter converts a requests-per-minute budget into a limiter.
// A non-positive rpm disables limiting.
func NewLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}
