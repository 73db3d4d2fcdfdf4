// Package retry is a bounded-retry policy, separated from the calls it wraps
// so backoff behavior is unit-testable with a fake sleeper.
package retry

import (
	"context"
	"fmt"
	"time"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy retries a failing operation up to MaxAttempts with Delay between
// attempts (multiplied linearly when Backoff is set).
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     bool
	Sleep       SleepFunc // nil means real time
}

func realSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn until it succeeds, attempts run out, or ctx is cancelled.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = realSleep
	}
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == attempts {
				return fmt.Errorf("failed after %d attempts: %w", attempts, err)
			}

			delay := p.Delay
			if p.Backoff {
				delay = time.Duration(attempt) * p.Delay
			}
			if err := sleep(ctx, delay); err != nil {
				return err
			}
			continue
		}
		return nil
	}
	return lastErr
}
