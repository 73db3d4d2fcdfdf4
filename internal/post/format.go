// Package post assembles the final publishable text: decorated headline,
// one sentence per block, hashtag suffix.
package post

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/neurocrow/newscurator/internal/textnorm"
)

// HashtagSuffix closes every article post.
const HashtagSuffix = "#IA #Tech #Innovación #NeuroCrow #Tijuana"

// Eye-catching but professional headline pairs.
var titleEmojiPairs = [][2]string{
	{"🔥", "🔥"},
	{"⚡", "⚡"},
	{"🤖", "💡"},
	{"🌟", "✨"},
	{"💫", "🚀"},
	{"🎯", "💡"},
	{"🔮", "✨"},
	{"💡", "🎯"},
	{"🌐", "⚡"},
	{"🎮", "🤖"},
}

var sentenceBreakRe = regexp.MustCompile(`([.!?])\s+`)

// Post is the final output handed to the publisher.
type Post struct {
	Content string
	Link    string
}

// Formatter renders posts. The RNG is injected so emoji choice is seedable
// and deterministic under test.
type Formatter struct {
	rng           *rand.Rand
	maxSummaryLen int
	abbreviations []string
}

func NewFormatter(rng *rand.Rand, maxSummaryLen int, abbreviations []string) *Formatter {
	if maxSummaryLen <= 0 {
		maxSummaryLen = textnorm.DefaultMaxLength
	}
	if abbreviations == nil {
		abbreviations = textnorm.DefaultAbbreviations
	}
	return &Formatter{rng: rng, maxSummaryLen: maxSummaryLen, abbreviations: abbreviations}
}

// Format builds the post from an already-normalized (and possibly
// translated) title and summary.
func (f *Formatter) Format(title, summary, link string) Post {
	pair := titleEmojiPairs[f.rng.Intn(len(titleEmojiPairs))]

	summary = textnorm.TruncateAtSentence(summary, f.maxSummaryLen, f.abbreviations)
	if summary != "" && !strings.ContainsRune(".!?", rune(summary[len(summary)-1])) {
		summary += "."
	}

	// One sentence per paragraph reads better on a feed wall.
	spaced := sentenceBreakRe.ReplaceAllString(summary, "$1\n\n")

	var b strings.Builder
	b.WriteString(pair[0] + " " + title + " " + pair[1])
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(spaced))
	b.WriteString("\n\n")
	b.WriteString(HashtagSuffix)

	return Post{Content: b.String(), Link: link}
}
