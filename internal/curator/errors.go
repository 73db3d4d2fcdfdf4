package curator

import (
	"errors"
	"fmt"
)

// ErrNoCandidates is the benign terminal state: nothing survived filtering.
// The run is a no-op, not a failure.
var ErrNoCandidates = errors.New("no suitable candidates")

// PublishError is fatal for the run. History is deliberately left untouched
// so the candidate is not lost to a transient platform failure.
type PublishError struct {
	Link string
	Err  error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish failed for %s: %v", e.Link, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// TranslationError is absorbed per candidate: after retries run out the
// candidate is discarded and selection moves on.
type TranslationError struct {
	Title string
	Err   error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed for %q: %v", e.Title, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
