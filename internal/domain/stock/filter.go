package stock

import (
	"fmt"
	"time"
)

// AllProducts valor centinela del filtro de producto: "todos los productos".
const AllProducts = "all"

// Period granularidad de análisis. Reservado: ningún constructor lo usa todavía.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Filter parámetros de filtrado provistos por la capa de presentación.
type Filter struct {
	Product string // ID de producto o AllProducts
	Year    int
	Period  Period // aceptado e ignorado
	Search  string // aceptado e ignorado
}

// IsAllProducts indica si el filtro de producto abarca todo el catálogo.
// El filtro vacío se trata igual que AllProducts.
func IsAllProducts(product string) bool {
	return product == "" || product == AllProducts
}

// MonthLabels etiquetas cortas de los 12 meses, enero primero.
type MonthLabels [12]string

// DefaultMonthLabels abreviaturas en francés (fr-FR, formato "short").
var DefaultMonthLabels = MonthLabels{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// Label devuelve la etiqueta del mes m.
func (l MonthLabels) Label(m time.Month) string {
	if m < time.January || m > time.December {
		return fmt.Sprintf("%02d", int(m))
	}
	return l[m-1]
}
