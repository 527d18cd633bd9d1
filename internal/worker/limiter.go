package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// APILimiter throttles outbound LLM calls during batch runs so a large
// batch does not hammer the provider's API.
type APILimiter struct {
	limiter *rate.Limiter
}

// NewAPILimiter creates a limiter allowing callsPerMinute calls with the
// given burst.
func NewAPILimiter(callsPerMinute int, burst int) *APILimiter {
	if callsPerMinute <= 0 {
		callsPerMinute = 30
	}
	if burst <= 0 {
		burst = 5
	}
	return &APILimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60), burst),
	}
}

// Wait blocks until the next call is allowed or the context is done.
func (l *APILimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a call is allowed right now, without waiting.
func (l *APILimiter) Allow() bool {
	return l.limiter.Allow()
}
