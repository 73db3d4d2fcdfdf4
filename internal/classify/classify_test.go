package classify

import "testing"

func TestIsPromotional_RuleTable(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		summary string
		want    bool
	}{
		{"black friday", "Black Friday Sale: 50% off AI tools", "Get every tool at half price.", true},
		{"percent off", "New AI assistant launched", "Everything is 30% off this week only.", true},
		{"spanish sale wording", "Gran oferta en cursos de IA", "Aprovecha los descuentos de temporada.", true},
		{"listicle ranking", "Top 10 AI tools for startups", "A countdown of popular products.", true},
		{"spanish listicle", "Los mejores 5 chatbots del año", "Una lista de productos destacados.", true},
		{"clean news", "OpenAI releases new reasoning model", "The company described benchmark results and availability for enterprise customers.", false},
		{"clean spanish news", "Google presenta un nuevo modelo de lenguaje", "La empresa mostró resultados en tareas de razonamiento y programación.", false},
	}
	for _, c := range cases {
		got, reason := IsPromotional(c.title, c.summary)
		if got != c.want {
			t.Errorf("%s: IsPromotional = %v (reason %q), want %v", c.name, got, reason, c.want)
		}
		if got && reason == "" {
			t.Errorf("%s: promotional verdict without a reason", c.name)
		}
	}
}

func TestIsPromotional_KeywordStacking(t *testing.T) {
	// Two primary words trip the filter.
	if got, _ := IsPromotional("Buy the new robot and save on accessories", ""); !got {
		t.Error("two primary keywords should be promotional")
	}
	// One primary word with two urgency words trips it too.
	if got, _ := IsPromotional("Special offer available now and today only", ""); !got {
		t.Error("primary keyword plus urgency wording should be promotional")
	}
	// A single incidental primary word does not.
	if got, reason := IsPromotional("Report examines the price of training large models", "Researchers analyzed compute spending across major labs during the last year."); got {
		t.Errorf("single incidental keyword flagged as promotional: %s", reason)
	}
}

func TestIsLowQuality_ShortSummary(t *testing.T) {
	if !IsLowQuality("OpenAI expands enterprise platform", "A new model was released today.") {
		t.Error("six-word summary should be low quality")
	}
}

func TestIsLowQuality_SubstantiveSummaryPasses(t *testing.T) {
	summary := "The company announced a broad expansion of its enterprise platform, bringing new language tools to customers across several countries in Latin America."
	if IsLowQuality("OpenAI expands enterprise platform across Latin America", summary) {
		t.Error("twenty-word summary flagged as low quality")
	}
}

func TestIsLowQuality_NumberedListTitle(t *testing.T) {
	if !IsLowQuality("10 formas de usar la IA", "Una lista con muchas ideas prácticas para aplicar herramientas nuevas en tu negocio cada semana del año.") {
		t.Error("numbered list title should be low quality")
	}
}

func TestIsLowQuality_FormatMarkersInTitle(t *testing.T) {
	summary := "The conversation covered research directions, hiring plans and the role of open source across the industry over the coming years."
	for _, title := range []string{
		"Interview with the head of research",
		"Review of the latest flagship phone",
		"A complete guide to prompt design",
	} {
		if !IsLowQuality(title, summary) {
			t.Errorf("title %q should be low quality", title)
		}
	}
}

func TestIsLowQuality_RoundupMarkers(t *testing.T) {
	if !IsLowQuality("Noticias mensuales de IA", "Resumen de todo lo que pasó durante el mes con enlaces a cada una de las notas publicadas.") {
		t.Error("monthly roundup should be low quality")
	}
}
