package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/fwojciec/docprep"
)

// RetryPolicy bounds retries of a fallible call with exponential backoff.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
}

// DefaultRetryPolicy returns 3 attempts waiting 4s then 8s (capped at 10s).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   4 * time.Second,
		Multiplier:  2,
		MaxDelay:    10 * time.Second,
	}
}

// Delays returns the wait before each retry. There are MaxAttempts-1 of them.
func (p RetryPolicy) Delays() []time.Duration {
	if p.MaxAttempts <= 1 {
		return nil
	}
	delays := make([]time.Duration, p.MaxAttempts-1)
	for i := range delays {
		d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(i))
		if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
			d = float64(p.MaxDelay)
		}
		delays[i] = time.Duration(d)
	}
	return delays
}

// Do calls fn until it succeeds or attempts run out. When every attempt
// fails it returns an EUNAVAILABLE error carrying the last failure. Context
// cancellation is returned as is.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delays := p.Delays()
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return docprep.Errorf(docprep.EUNAVAILABLE, "giving up after %d attempts: %v", maxAttempts, lastErr)
}
