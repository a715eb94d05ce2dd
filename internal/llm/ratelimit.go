package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type limitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit makes every Generate call, retries included, wait for a
// token from limiter.
func WithRateLimit(p Provider, limiter *rate.Limiter) Provider {
	return &limitedProvider{inner: p, limiter: limiter}
}

// NewLimiter returns a limiter allowing perSecond requests per second with
// bursts of up to burst requests. A non-positive rate disables limiting.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
}

func (l *limitedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return l.inner.Generate(ctx, req)
}

func (l *limitedProvider) ModelID() string {
	return l.inner.ModelID()
}
