// Package classify rejects feed entries that would make bad posts:
// promotional pieces and formats that do not compress into a short update.
package classify

import (
	"regexp"
	"strings"

	"github.com/neurocrow/newscurator/internal/textnorm"
)

// Rule pairs a pattern with the reason reported when it matches, so rejects
// are explainable in logs and the table is testable row by row.
type Rule struct {
	Pattern *regexp.Regexp
	Reason  string
}

var promotionalRules = []Rule{
	{regexp.MustCompile(`(?i)\b(?:black friday|cyber monday|buen fin)\b`), "seasonal sale event"},
	{regexp.MustCompile(`(?i)\b\d+\s*%\s*(?:off|de descuento)\b`), "percent-off promotion"},
	{regexp.MustCompile(`(?i)\b(?:sale|discount|coupon|giveaway)\b`), "sale wording"},
	{regexp.MustCompile(`(?i)\b(?:oferta|descuento|promoci[óo]n|cup[óo]n|rebaja)s?\b`), "sale wording (es)"},
	{regexp.MustCompile(`(?i)\b(?:top|best)\s+\d+\b`), "listicle ranking"},
	{regexp.MustCompile(`(?i)\b(?:el|la|los|las)?\s*mejor(?:es)?\s+\d+\b`), "listicle ranking (es)"},
	{regexp.MustCompile(`(?i)\bprecio m[áa]s bajo\b`), "price pitch (es)"},
}

// Two-tier keyword rule: one incidental "price" should not sink an article,
// but primary words stacking up, or one primary plus urgency intensifiers,
// reads as ad copy.
var primaryPromoWords = []string{
	"buy", "purchase", "deal", "save", "offer", "price",
	"compra", "comprar", "ahorra", "oferta", "precio",
}

var secondaryPromoWords = []string{
	"now", "today", "limited", "exclusive", "special",
	"ahora", "hoy", "limitado", "exclusiva", "exclusivo", "especial",
}

// IsPromotional reports whether title+summary reads as promotional content,
// with the reason for the verdict.
func IsPromotional(title, summary string) (bool, string) {
	text := title + " " + summary

	for _, rule := range promotionalRules {
		if rule.Pattern.MatchString(text) {
			return true, rule.Reason
		}
	}

	primary := countWords(text, primaryPromoWords)
	if primary >= 2 {
		return true, "multiple promotional keywords"
	}
	if primary >= 1 && countWords(text, secondaryPromoWords) >= 2 {
		return true, "promotional keyword with urgency wording"
	}
	return false, ""
}

var lowQualityMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)noticias mensuales`),
	regexp.MustCompile(`(?i)noticias semanales`),
	regexp.MustCompile(`(?i)\b(?:monthly|weekly) roundup\b`),
	regexp.MustCompile(`(?i)the post first appeared`),
	regexp.MustCompile(`(?i)click aqu[íi]`),
}

var numberedListTitleRe = regexp.MustCompile(`^\d+\s+[\p{L}\s]+$`)

var titleFormatMarkers = []string{"interview", "review", "guide", "tutorial"}

const minSummaryWords = 15

const maxSummaryNewlines = 10

// IsLowQuality reports whether the entry is too thin or the wrong format for
// a short post. The word-count check runs on the normalized summary so markup
// does not inflate it.
func IsLowQuality(title, summary string) bool {
	if numberedListTitleRe.MatchString(strings.TrimSpace(title)) {
		return true
	}

	text := title + " " + summary
	for _, re := range lowQualityMarkers {
		if re.MatchString(text) {
			return true
		}
	}

	if len(strings.Fields(textnorm.Normalize(summary))) < minSummaryWords {
		return true
	}

	if strings.Count(summary, "\n") > maxSummaryNewlines {
		return true
	}

	lowerTitle := strings.ToLower(title)
	for _, marker := range titleFormatMarkers {
		if strings.Contains(lowerTitle, marker) {
			return true
		}
	}
	return false
}

var wordRes = map[string]*regexp.Regexp{}

func init() {
	for _, w := range append(append([]string{}, primaryPromoWords...), secondaryPromoWords...) {
		wordRes[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
}

// countWords counts occurrences of each keyword as a whole word,
// case-insensitively.
func countWords(text string, words []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, w := range words {
		count += len(wordRes[w].FindAllString(lower, -1))
	}
	return count
}
