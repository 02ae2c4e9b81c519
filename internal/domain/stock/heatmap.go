package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// Heatmap construye el grid productos × 12 meses del año year. Las celdas salen en orden
// de catálogo y, dentro de cada producto, en orden calendario.
//
// La intensidad se normaliza contra la mayor cantidad de una sola celda en todo el grid
// (normalización global, no por producto ni por mes). Si ese máximo es 0 todas las
// intensidades son 0.
func Heatmap(products []entity.Product, invoices []entity.Invoice, year int, labels MonthLabels) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(products)*12)
	maxQuantity := decimal.Zero

	for _, p := range products {
		for m := time.January; m <= time.December; m++ {
			totals := Aggregate(invoices, InMonth(year, m), p.Name)
			if totals.Quantity.GreaterThan(maxQuantity) {
				maxQuantity = totals.Quantity
			}
			cells = append(cells, HeatmapCell{
				Month:       labels.Label(m),
				ProductName: p.Name,
				Quantity:    totals.Quantity,
				Value:       totals.Value,
			})
		}
	}

	for i := range cells {
		cells[i].Intensity = intensity(cells[i].Quantity, maxQuantity)
	}
	return cells
}

func intensity(quantity, maxQuantity decimal.Decimal) decimal.Decimal {
	if !maxQuantity.IsPositive() {
		return decimal.Zero
	}
	return quantity.Div(maxQuantity)
}
