package provider

import "strings"

// DefaultTranslations maps common English dish names to the provider's search language.
var DefaultTranslations = map[string]string{
	"pizza":     "пицца",
	"sushi":     "суши",
	"burger":    "бургер",
	"pasta":     "паста",
	"salad":     "салат",
	"steak":     "стейк",
	"coffee":    "кофе",
	"cake":      "торт",
	"ice cream": "мороженое",
	"sandwich":  "сэндвич",
}

type Localizer struct {
	table map[string]string
}

func NewLocalizer(table map[string]string) *Localizer {
	if table == nil {
		table = DefaultTranslations
	}
	return &Localizer{table: table}
}

// Localize returns the translated term, or the input unchanged when no translation is known.
func (l *Localizer) Localize(term string) string {
	if translated, ok := l.table[strings.ToLower(strings.TrimSpace(term))]; ok {
		return translated
	}
	return term
}
