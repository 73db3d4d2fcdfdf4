// Package textnorm cleans raw feed text: markup, boilerplate, attribution
// lines and partial sentences go, and the survivors are bounded to a
// sentence-safe length.
package textnorm

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Line-level boilerplate. Order matters: URLs and syndication footers first,
// attribution lines after, so a footer containing "Fuente:" is gone before the
// attribution pass sees it.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://\S+`),
	regexp.MustCompile(`(?i)the post\b.*?appeared first on.*?$`),
	regexp.MustCompile(`(?i)\S+\s+(?:appeared|posted|published)\s+(?:first\s+)?on\s+[A-Za-z0-9.\-]+\s*$`),
	regexp.MustCompile(`(?i)originally (?:published|posted)\b.*?$`),
	regexp.MustCompile(`(?i)(?:read more|read the full|leer m[áa]s|leer (?:el )?art[íi]culo|leer nota|ver m[áa]s|m[áa]s informaci[óo]n|continuar leyendo|contin[úu]a leyendo|seguir leyendo)\b[:.]?.*?$`),
	regexp.MustCompile(`(?im)^\s*(?:image|imagen|photo|foto|credit|cr[ée]dito|source|fuente|via|v[íi]a)\s*:\s*[^.!?\n]*`),
	regexp.MustCompile(`(?i)(?:illustration|ilustraci[óo]n) (?:by|de)\b[^.]*`),
	regexp.MustCompile(`(?i)(?:photo|foto) (?:by|de)\b[^.]*`),
	regexp.MustCompile(`\[[^\]]*\]`),
	regexp.MustCompile(`\([^)]*\)`),
	regexp.MustCompile(`\s*\|\s*[^|.!?]{0,60}$`),
	regexp.MustCompile(`…`),
}

// Lead words that mark a whole sentence as attribution/boilerplate.
var boilerplateLeadWords = map[string]bool{
	"image": true, "imagen": true, "photo": true, "foto": true,
	"credit": true, "crédito": true, "credito": true,
	"source": true, "fuente": true, "website": true, "via": true, "vía": true,
}

var domainSuffixes = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "ai": true,
	"mx": true, "es": true, "co": true,
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	periodRunRe  = regexp.MustCompile(`\.{2,}`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
)

// Normalize strips markup and boilerplate from raw feed text. It never fails;
// an empty string is the legitimate result for input that was all noise.
func Normalize(raw string) string {
	text := html.UnescapeString(raw)
	text = stripMarkup(text)

	for _, re := range boilerplatePatterns {
		text = re.ReplaceAllString(text, " ")
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = periodRunRe.ReplaceAllString(text, ".")
	text = strings.TrimSpace(text)

	var kept []string
	for _, seg := range strings.Split(text, ".") {
		seg = strings.TrimSpace(seg)
		if keepSegment(seg) {
			kept = append(kept, seg)
		}
	}

	out := strings.TrimSpace(strings.Join(kept, ". "))
	if out == "" {
		return ""
	}
	if !strings.ContainsRune(".!?", rune(out[len(out)-1])) {
		out += "."
	}
	return out
}

// stripMarkup keeps only the visible text of an HTML fragment.
func stripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return tagRe.ReplaceAllString(s, " ")
	}
	return doc.Text()
}

func keepSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if strings.ContainsRune(seg, '|') {
		return false
	}

	hasLetter := false
	for _, r := range seg {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}

	words := strings.Fields(seg)
	if len(words) <= 2 {
		return false
	}
	if isAllDigits(words) {
		return false
	}

	lead := strings.ToLower(strings.Trim(words[0], ":,;"))
	if boilerplateLeadWords[lead] {
		return false
	}

	last := strings.ToLower(strings.Trim(words[len(words)-1], ":,;"))
	if domainSuffixes[last] {
		return false
	}

	return true
}

func isAllDigits(words []string) bool {
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}
