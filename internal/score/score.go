// Package score ranks surviving candidates. Scores are relative only: there
// is no upper bound and no meaning beyond "higher wins".
package score

import (
	"regexp"
	"strings"
	"time"
)

// Bilingual AI/tech terms. Each distinct keyword found in title+summary is
// worth keywordPoints once, regardless of how often it repeats.
var aiKeywords = []string{
	"ia", "ai", "inteligencia artificial", "artificial intelligence",
	"machine learning", "deep learning", "neural", "modelo", "model",
	"chatgpt", "gpt", "llm", "openai", "google", "microsoft",
	"automatización", "automation", "robot", "chatbot", "data",
}

const keywordPoints = 5

// shortKeywordRes gives word-boundary matching to tokens of three letters or
// fewer, so "ai" does not match inside "said".
var shortKeywordRes = map[string]*regexp.Regexp{}

func init() {
	for _, k := range aiKeywords {
		if len(k) <= 3 && !strings.Contains(k, " ") {
			shortKeywordRes[k] = regexp.MustCompile(`\b` + k + `\b`)
		}
	}
}

// Article scores a candidate from title shape, keyword relevance and
// freshness. publishedAt may be nil; freshness then contributes nothing.
func Article(title, summary string, publishedAt *time.Time, now time.Time) int {
	points := 0

	titleWords := len(strings.Fields(title))
	switch {
	case titleWords >= 5 && titleWords <= 15:
		points += 10
	case titleWords >= 3 && titleWords <= 20:
		points += 5
	}

	text := strings.ToLower(title + " " + summary)
	for _, keyword := range aiKeywords {
		if matchKeyword(text, keyword) {
			points += keywordPoints
		}
	}

	if publishedAt != nil {
		switch age := now.Sub(*publishedAt); {
		case age < 24*time.Hour:
			points += 20
		case age < 48*time.Hour:
			points += 10
		case age < 72*time.Hour:
			points += 5
		}
	}

	return points
}

func matchKeyword(text, keyword string) bool {
	if re, ok := shortKeywordRes[keyword]; ok {
		return re.MatchString(text)
	}
	return strings.Contains(text, keyword)
}
