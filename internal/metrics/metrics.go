// Package metrics keeps in-process counters for the monitoring endpoints.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	EntriesProcessed    int64
	RejectedPromotional int64
	RejectedLowQuality  int64
	DuplicatesFiltered  int64
	TranslationsOK      int64
	TranslationsFailed  int64
	PostsPublished      int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementEntriesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesProcessed++
}

func (m *Metrics) IncrementRejectedPromotional() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectedPromotional++
}

func (m *Metrics) IncrementRejectedLowQuality() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectedLowQuality++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) IncrementTranslationsOK() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsOK++
}

func (m *Metrics) IncrementTranslationsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsFailed++
}

func (m *Metrics) IncrementPostsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PostsPublished++
}

func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = duration
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"entries_processed":    m.EntriesProcessed,
		"rejected_promotional": m.RejectedPromotional,
		"rejected_low_quality": m.RejectedLowQuality,
		"duplicates_filtered":  m.DuplicatesFiltered,
		"translations_ok":      m.TranslationsOK,
		"translations_failed":  m.TranslationsFailed,
		"posts_published":      m.PostsPublished,
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_error_time":      m.LastErrorTime.Format(time.RFC3339),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}
