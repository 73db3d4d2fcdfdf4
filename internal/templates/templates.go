// Package templates generates filler posts from a static bilingual template
// dictionary, used when a run finds no publishable article. Slot values are
// chosen with an injected RNG so generation is deterministic under a fixed
// seed.
package templates

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// FillerHashtags closes every filler post.
const FillerHashtags = "#IA #Innovación #NeuroCrow #TechMX"

// Category holds the template material for one post family. ContentTemplates
// reference Slots entries as {name} placeholders.
type Category struct {
	Titles           []string
	ContentTemplates []string
	Slots            map[string][]string
}

var Library = map[string]Category{
	"tech_tips": {
		Titles: []string{
			"💡 Tip del Día con NeuroCrow",
			"💡 Consejo Tech del Día",
			"💡 Optimiza tu Negocio",
			"💡 NeuroCrow te Enseña",
			"💡 Mejora tu Empresa con IA",
		},
		ContentTemplates: []string{
			"¿Sabías que la IA puede {action}? Nuestros expertos pueden ayudarte a implementar soluciones que {benefit}.",
			"Descubre cómo la IA está {action}. Con las herramientas correctas, tu empresa puede {benefit}.",
			"La tecnología adecuada hace la diferencia: {action}. Permítenos mostrarte cómo {benefit}.",
			"Transforma tu negocio: {action}. Nuestras soluciones te ayudarán a {benefit}.",
		},
		Slots: map[string][]string{
			"action": {
				"automatizar el servicio al cliente 24/7",
				"procesar datos en tiempo real",
				"optimizar operaciones automáticamente",
				"predecir tendencias de mercado",
				"personalizar la experiencia del cliente",
				"automatizar tareas repetitivas",
				"generar reportes automáticos",
				"detectar patrones en grandes volúmenes de datos",
			},
			"benefit": {
				"ahorrar tiempo y recursos valiosos",
				"reducir costos operativos hasta en un 40%",
				"aumentar la productividad significativamente",
				"mejorar la satisfacción del cliente",
				"mantener una ventaja competitiva",
				"escalar operaciones eficientemente",
				"reducir tiempos de respuesta",
				"maximizar el retorno de inversión",
			},
		},
	},
	"ai_facts": {
		Titles: []string{
			"🤖 ¿Sabías que...?",
			"🤖 Datos Curiosos de IA",
			"🤖 Descubre la IA",
			"🤖 El Mundo de la IA",
			"🤖 Tecnología en Acción",
		},
		ContentTemplates: []string{
			"La inteligencia artificial {fact}. En NeuroCrow trabajamos con las últimas tecnologías para {goal}.",
			"Un dato fascinante: {fact}. ¿Estás aprovechando el poder de la IA para {goal}?",
			"El futuro es ahora: {fact}. Descubre cómo podemos ayudarte a {goal}.",
			"Tecnología que transforma: {fact}. Con NeuroCrow puedes {goal}.",
		},
		Slots: map[string][]string{
			"fact": {
				"procesa más de 1 millón de conversaciones por segundo a nivel mundial",
				"ya genera más del 30% del código empresarial moderno",
				"puede predecir tendencias de mercado con 85% de precisión",
				"reduce hasta un 60% el tiempo en tareas administrativas",
				"puede analizar años de datos en cuestión de segundos",
				"detecta patrones invisibles al ojo humano",
				"aprende y mejora constantemente de cada interacción",
				"está transformando cada sector de la economía",
			},
			"goal": {
				"mantener tu negocio a la vanguardia",
				"impulsar tu crecimiento empresarial",
				"optimizar tus procesos",
				"transformar tu modelo de negocio",
				"acelerar tu transformación digital",
				"mejorar tu servicio al cliente",
				"escalar tu negocio",
				"aumentar tu competitividad",
			},
		},
	},
	"future_vision": {
		Titles: []string{
			"🔮 El Futuro es Hoy",
			"🔮 Visión del Mañana",
			"🔮 Innovación NeuroCrow",
			"🔮 Transformación Digital",
			"🔮 El Futuro de tu Empresa",
		},
		ContentTemplates: []string{
			"Imagina un negocio donde {vision}. Con la IA correcta, no es ciencia ficción - es una realidad alcanzable.",
			"El futuro pertenece a quienes {vision}. ¿Estás listo para dar el siguiente paso?",
			"Las empresas del mañana son las que {vision}. NeuroCrow te ayuda a llegar ahí.",
			"Transforma tu empresa: {vision}. Con IA, el futuro es hoy.",
		},
		Slots: map[string][]string{
			"vision": {
				"cada cliente recibe atención personalizada las 24 horas",
				"los procesos se optimizan automáticamente",
				"las decisiones se toman con datos en tiempo real",
				"la automatización libera el potencial humano",
				"los datos se convierten en ventajas competitivas",
				"la experiencia del cliente es excepcional",
				"el análisis predictivo guía cada decisión",
				"la productividad se multiplica exponencialmente",
			},
		},
	},
}

// Generator produces filler posts from the library.
type Generator struct {
	rng     *rand.Rand
	library map[string]Category
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, library: Library}
}

// Categories lists available template categories in stable order.
func (g *Generator) Categories() []string {
	names := make([]string, 0, len(g.library))
	for name := range g.library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate renders a filler post for the category; empty category picks one
// at random.
func (g *Generator) Generate(category string) (string, error) {
	if category == "" {
		names := g.Categories()
		category = names[g.rng.Intn(len(names))]
	}

	tpl, ok := g.library[category]
	if !ok {
		return "", fmt.Errorf("unknown template category %q", category)
	}

	title := tpl.Titles[g.rng.Intn(len(tpl.Titles))]
	content := tpl.ContentTemplates[g.rng.Intn(len(tpl.ContentTemplates))]

	// Slots fill in sorted order so a fixed seed yields a fixed post.
	slots := make([]string, 0, len(tpl.Slots))
	for slot := range tpl.Slots {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		choices := tpl.Slots[slot]
		value := choices[g.rng.Intn(len(choices))]
		content = strings.ReplaceAll(content, "{"+slot+"}", value)
	}

	return title + "\n\n" + content + "\n\n" + FillerHashtags, nil
}
