// Package language decides whether text is already in the publishing
// language. Detection is statistical (trigram profiles via whatlanggo);
// naive stopword matching misfires on short tech headlines full of English
// product names.
package language

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// Texts shorter than this are too ambiguous for trigram detection.
const minDetectableRunes = 20

// IsSpanish reports whether text is confidently Spanish. It fails soft:
// short, ambiguous or undetectable input returns false, which routes the
// candidate through translation.
func IsSpanish(text string) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minDetectableRunes {
		return false
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return false
	}
	return info.Lang == whatlanggo.Spa
}
