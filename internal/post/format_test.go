package post

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestFormatter(seed int64) *Formatter {
	return NewFormatter(rand.New(rand.NewSource(seed)), 200, nil)
}

func TestFormat_Structure(t *testing.T) {
	f := newTestFormatter(1)
	p := f.Format("La IA llega a más empresas", "Primera frase corta. Segunda frase corta.", "https://example.com/a")

	if p.Link != "https://example.com/a" {
		t.Errorf("link = %q", p.Link)
	}
	if !strings.Contains(p.Content, "La IA llega a más empresas") {
		t.Errorf("headline missing: %q", p.Content)
	}
	if !strings.HasSuffix(p.Content, HashtagSuffix) {
		t.Errorf("hashtag suffix missing: %q", p.Content)
	}
	if !strings.Contains(p.Content, "Primera frase corta.\n\nSegunda frase corta.") {
		t.Errorf("sentences not separated into paragraphs: %q", p.Content)
	}
}

func TestFormat_DeterministicUnderSeed(t *testing.T) {
	a := newTestFormatter(42).Format("Titular de prueba para hoy", "Una frase completa de resumen.", "https://example.com/x")
	b := newTestFormatter(42).Format("Titular de prueba para hoy", "Una frase completa de resumen.", "https://example.com/x")
	if a.Content != b.Content {
		t.Errorf("same seed produced different posts:\n%q\n%q", a.Content, b.Content)
	}
}

func TestFormat_TruncatesLongSummary(t *testing.T) {
	long := strings.Repeat("Una frase de relleno con bastantes palabras dentro. ", 10)
	f := newTestFormatter(7)
	p := f.Format("Titular", long, "")

	body := strings.TrimSuffix(p.Content, "\n\n"+HashtagSuffix)
	if len(body) > 200+60 { // headline and emoji on top of the bounded summary
		t.Errorf("summary not truncated, body length %d", len(body))
	}
}

func TestFormat_HeadlineWrappedInEmoji(t *testing.T) {
	p := newTestFormatter(3).Format("Titular breve de prueba", "Frase única de resumen.", "")
	headline := strings.SplitN(p.Content, "\n", 2)[0]
	if strings.HasPrefix(headline, "Titular") || strings.HasSuffix(headline, "prueba") {
		t.Errorf("headline has no emoji decoration: %q", headline)
	}
	if !strings.Contains(headline, "Titular breve de prueba") {
		t.Errorf("headline text missing: %q", headline)
	}
}
