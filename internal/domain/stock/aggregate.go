package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// Totals suma de cantidad y valor monetario de un conjunto de líneas de factura.
type Totals struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// Predicate prueba booleana sobre una factura (normalmente pertenencia a un rango de fechas).
type Predicate func(inv entity.Invoice) bool

// Matches indica si la línea pertenece al producto. La unión es por nombre visible,
// igualdad exacta: un producto renombrado deja huérfanas sus líneas históricas.
func Matches(item entity.LineItem, product entity.Product) bool {
	return item.Description == product.Name
}

// InMonth acepta las facturas fechadas en el mes calendario month del año year.
func InMonth(year int, month time.Month) Predicate {
	return func(inv entity.Invoice) bool {
		return inv.Date.Year() == year && inv.Date.Month() == month
	}
}

// InYear acepta las facturas fechadas en el año year.
func InYear(year int) Predicate {
	return func(inv entity.Invoice) bool {
		return inv.Date.Year() == year
	}
}

// Aggregate suma Quantity y Total de cada línea cuya Description es productName, en las
// facturas que cumplen pred. pred nil abarca todo el historial.
func Aggregate(invoices []entity.Invoice, pred Predicate, productName string) Totals {
	totals := Totals{Quantity: decimal.Zero, Value: decimal.Zero}
	for _, inv := range invoices {
		if pred != nil && !pred(inv) {
			continue
		}
		for _, item := range inv.Items {
			if item.Description != productName {
				continue
			}
			totals.Quantity = totals.Quantity.Add(item.Quantity)
			totals.Value = totals.Value.Add(item.Total)
		}
	}
	return totals
}

// clampedRemaining stock restante acotado a cero (evolución y distribución).
func clampedRemaining(stock, sold decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, stock.Sub(sold))
}

// unclampedRemaining stock restante sin acotar, puede ser negativo (resumen global).
func unclampedRemaining(stock, sold decimal.Decimal) decimal.Decimal {
	return stock.Sub(sold)
}

// findProduct devuelve el primer producto del catálogo con el ID indicado.
func findProduct(products []entity.Product, id string) (entity.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
