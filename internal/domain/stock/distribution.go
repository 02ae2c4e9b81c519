package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// DistributionMode selecciona la magnitud repartida entre productos.
type DistributionMode string

const (
	// ModeSales valor de ventas histórico por producto.
	ModeSales DistributionMode = "sales"
	// ModeStock valor de compra del stock restante (acotado a cero) por producto.
	ModeStock DistributionMode = "stock"
)

// Palette colores asignados por posición en la lista (índice mod len).
var Palette = [...]string{
	"#8B5CF6", "#06B6D4", "#10B981", "#F59E0B", "#EF4444",
	"#EC4899", "#6366F1", "#84CC16", "#F97316", "#14B8A6",
}

var hundred = decimal.NewFromInt(100)

// Distribution reparte ventas o valor de stock entre los productos del catálogo sobre
// todo el historial de facturas (sin filtro de año). Descarta valores <= 0 y conserva el
// orden del catálogo; no ordena por magnitud. Cualquier modo distinto de ModeSales se
// trata como ModeStock.
func Distribution(products []entity.Product, invoices []entity.Invoice, mode DistributionMode) []DistributionSlice {
	type entry struct {
		label string
		value decimal.Decimal
	}

	kept := make([]entry, 0, len(products))
	total := decimal.Zero
	for _, p := range products {
		totals := Aggregate(invoices, nil, p.Name)

		var value decimal.Decimal
		if mode == ModeSales {
			value = totals.Value
		} else {
			value = clampedRemaining(p.Stock, totals.Quantity).Mul(p.PurchasePrice)
		}
		if !value.IsPositive() {
			continue
		}
		kept = append(kept, entry{label: p.Name, value: value})
		total = total.Add(value)
	}

	slices := make([]DistributionSlice, 0, len(kept))
	for i, e := range kept {
		slices = append(slices, DistributionSlice{
			Label:      e.label,
			Value:      e.value,
			Color:      Palette[i%len(Palette)],
			Percentage: percentOf(e.value, total),
		})
	}
	return slices
}

// SliceTotal suma los valores de las porciones (valor central del donut).
func SliceTotal(slices []DistributionSlice) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	return total
}

func percentOf(value, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred)
}
