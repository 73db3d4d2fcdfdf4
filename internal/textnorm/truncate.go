package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultMaxLength bounds a post summary. Overridable through configuration.
const DefaultMaxLength = 800

// DefaultAbbreviations are tokens that end in a period without ending a
// sentence. Prefix-matched case-insensitively so "Dr." and "Dra.," both hit.
var DefaultAbbreviations = []string{
	"sr.", "sra.", "dr.", "dra.", "prof.", "etc.", "ej.", "vs.",
}

var trailingCopyrightRe = regexp.MustCompile(`\s+\S+©$`)

// TruncateAtSentence bounds text to maxLength without cutting mid-sentence.
// When even the first sentence is longer than maxLength, that sentence is
// returned whole; non-empty input never yields an empty result.
func TruncateAtSentence(text string, maxLength int, abbreviations []string) string {
	if len(text) <= maxLength {
		return text
	}
	if abbreviations == nil {
		abbreviations = DefaultAbbreviations
	}

	sentences := splitSentences(text, abbreviations)

	var result []string
	length := 0
	for _, sentence := range sentences {
		if length+len(sentence)+1 > maxLength {
			break
		}
		result = append(result, sentence)
		length += len(sentence) + 1
	}

	var final string
	if len(result) == 0 && len(sentences) > 0 {
		// Nothing fit: the first sentence wins whole rather than returning
		// nothing or a mid-sentence cut.
		final = sentences[0]
	} else {
		final = strings.Join(result, " ")
	}
	final = trailingCopyrightRe.ReplaceAllString(final, ".")
	final = strings.TrimRight(final, " \t\n")
	final = stripTrailingSymbol(final)

	if final != "" && !strings.ContainsRune(".!?", rune(final[len(final)-1])) {
		final += "."
	}
	return final
}

// stripTrailingSymbol drops a dangling non-letter, non-digit tail symbol
// (stray dashes, quotes, partial copyright marks) left by truncation.
func stripTrailingSymbol(s string) string {
	runes := []rune(s)
	for len(runes) > 0 {
		r := runes[len(runes)-1]
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(".!?", r) {
			break
		}
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " \t\n")
}

// splitSentences accumulates whole words, closing a sentence at a token
// ending in terminal punctuation unless the token is a known abbreviation.
func splitSentences(text string, abbreviations []string) []string {
	var sentences []string
	var current []string

	for _, word := range strings.Fields(text) {
		current = append(current, word)
		if endsSentence(word, abbreviations) {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}
	return sentences
}

func endsSentence(word string, abbreviations []string) bool {
	if !strings.HasSuffix(word, ".") && !strings.HasSuffix(word, "!") && !strings.HasSuffix(word, "?") {
		return false
	}
	lower := strings.ToLower(word)
	for _, abbr := range abbreviations {
		if strings.HasPrefix(lower, abbr) {
			return false
		}
	}
	return true
}
