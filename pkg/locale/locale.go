// Package locale formatea números, fechas y nombres de mes según el idioma del reporte.
package locale

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Idiomas soportados; cualquier otro cae en francés.
var supported = language.NewMatcher([]language.Tag{
	language.French,
	language.Spanish,
	language.English,
})

var shortMonths = map[language.Base][12]string{
	mustBase("fr"): {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	mustBase("es"): {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	mustBase("en"): {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var dateLayouts = map[language.Base]string{
	mustBase("fr"): "02/01/2006",
	mustBase("es"): "02/01/2006",
	mustBase("en"): "01/02/2006",
}

// Formatter formatea valores para un idioma fijo. Es seguro para uso concurrente.
type Formatter struct {
	tag     language.Tag
	base    language.Base
	printer *message.Printer
}

// New construye un Formatter para lang ("fr", "es-CO", "en-US"...).
func New(lang string) *Formatter {
	requested, err := language.Parse(lang)
	if err != nil {
		requested = language.French
	}
	_, idx, _ := supported.Match(requested)
	tag := []language.Tag{language.French, language.Spanish, language.English}[idx]
	base, _ := tag.Base()
	return &Formatter{
		tag:     tag,
		base:    base,
		printer: message.NewPrinter(tag),
	}
}

// Tag idioma efectivo.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Decimal formatea d con separadores del idioma y como máximo 2 decimales.
// Los espacios no separables se sustituyen por espacios simples (fuentes PDF core).
func (f *Formatter) Decimal(d decimal.Decimal) string {
	s := f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
	return strings.NewReplacer("\u202f", " ", "\u00a0", " ").Replace(s)
}

// Percent formatea un porcentaje ya multiplicado por 100, con 1 decimal y el signo %.
func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(1), number.MinFractionDigits(1))) + " %"
}

// Date formatea t como fecha corta del idioma.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(dateLayouts[f.base])
}

// ShortMonths abreviaturas de los 12 meses, enero primero.
func (f *Formatter) ShortMonths() [12]string {
	return shortMonths[f.base]
}

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}
