// Package ratelimit caps translator invocations per run, so a feed full of
// non-Spanish entries cannot burn through the API quota in one batch.
package ratelimit

import (
	"log/slog"
	"sync"
)

// Budget counts translator calls against a per-run maximum.
// A max of zero or less means unlimited.
type Budget struct {
	mu   sync.Mutex
	used int
	max  int
}

func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Allow consumes one call from the budget if any remains.
func (b *Budget) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.max > 0 && b.used >= b.max {
		slog.Warn("translation budget exhausted", "used", b.used, "max", b.max)
		return false
	}
	b.used++
	return true
}

// Used reports how many calls have been consumed.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}
