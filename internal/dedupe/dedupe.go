// Package dedupe flags candidate titles that are too similar to recently
// published ones. Similarity is the difflib sequence-matching ratio
// (2·M / T over the optimal alignment), computed per rune so accented
// characters compare correctly. The history window is small by retention
// policy, so the quadratic match cost per pair stays negligible.
package dedupe

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the ratio above which two titles count as the same
// story. Overridable through configuration.
const DefaultThreshold = 0.85

// Ratio returns the case-folded similarity of two titles in [0,1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runeSlice(a), runeSlice(b)).Ratio()
}

// IsDuplicate reports whether title exceeds the similarity threshold against
// any previously published title.
func IsDuplicate(title string, previousTitles []string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	for _, prev := range previousTitles {
		if Ratio(title, prev) > threshold {
			return true
		}
	}
	return false
}

func runeSlice(s string) []string {
	s = strings.ToLower(strings.TrimSpace(s))
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
