// Package retrier provides bounded retries with exponential backoff for
// transient network failures. The analysis core never retries; only the
// orchestration layer wraps exchange calls with a Retrier.
package retrier

import (
	"context"
	"time"
)

const (
	defaultAttempts = 3
	defaultInitial  = 500 * time.Millisecond
	defaultMax      = 10 * time.Second
)

// Retrier re-runs a failing function with doubling backoff between attempts.
type Retrier struct {
	attempts int
	initial  time.Duration
	max      time.Duration
}

// New creates a Retrier. Non-positive arguments fall back to defaults.
func New(attempts int, initial, max time.Duration) *Retrier {
	if attempts < 1 {
		attempts = defaultAttempts
	}
	if initial <= 0 {
		initial = defaultInitial
	}
	if max <= 0 {
		max = defaultMax
	}
	return &Retrier{attempts: attempts, initial: initial, max: max}
}

// Do runs fn up to the configured number of attempts, waiting between
// attempts and honoring context cancellation. The last error is returned
// when all attempts fail.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := r.initial

	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == r.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > r.max {
			delay = r.max
		}
	}

	return err
}

// DoWithData is Do for functions that return a value.
func DoWithData[T any](r *Retrier, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}
