// Package history keeps the bounded-retention window of previously published
// posts that deduplication checks against. The orchestrator is its only
// writer; retention is enforced with a purge on every save.
package history

import (
	"context"
	"time"
)

// Entry records one published post. OriginalTitle is the pre-translation
// title: similarity comparisons always run against the untranslated text so
// language does not bias the ratio.
type Entry struct {
	OriginalTitle string    `json:"original_title"`
	Link          string    `json:"link"`
	CreatedAt     time.Time `json:"created_at"`
	PostContent   string    `json:"post_content,omitempty"`
}

// Store is the persistence behind the history window. Load tolerates missing
// or malformed state by returning an empty history; Save applies the
// purge-then-write discipline.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// Purge drops entries older than the retention window relative to now.
func Purge(entries []Entry, retention time.Duration, now time.Time) []Entry {
	cutoff := now.Add(-retention)
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.After(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Titles extracts the original titles for the deduplicator.
func Titles(entries []Entry) []string {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.OriginalTitle
	}
	return titles
}
