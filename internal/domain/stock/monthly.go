package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// MonthlyTrend construye las 12 métricas mensuales del año year, en orden calendario.
//
// Con productFilter AllProducts se acumulan todas las líneas de las facturas del mes;
// con un ID concreto solo las líneas cuyo Description es el nombre de ese producto
// (un ID desconocido no coincide con ninguna línea).
//
// OrdersCount cuenta cada factura fechada en el mes, tenga o no líneas que coincidan con
// el filtro: es el número de facturas presentes en el mes, no de facturas con contenido
// del producto.
func MonthlyTrend(
	products []entity.Product,
	invoices []entity.Invoice,
	year int,
	productFilter string,
	labels MonthLabels,
) []MonthlySalesPoint {
	match := itemMatcher(products, productFilter)

	points := make([]MonthlySalesPoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		inMonth := InMonth(year, m)
		point := MonthlySalesPoint{
			Month:    labels.Label(m),
			Quantity: decimal.Zero,
			Value:    decimal.Zero,
		}
		for _, inv := range invoices {
			if !inMonth(inv) {
				continue
			}
			for _, item := range inv.Items {
				if match(item) {
					point.Quantity = point.Quantity.Add(item.Quantity)
					point.Value = point.Value.Add(item.Total)
				}
			}
			point.OrdersCount++
		}
		points = append(points, point)
	}
	return points
}

func itemMatcher(products []entity.Product, productFilter string) func(entity.LineItem) bool {
	if IsAllProducts(productFilter) {
		return func(entity.LineItem) bool { return true }
	}
	product, ok := findProduct(products, productFilter)
	if !ok {
		return func(entity.LineItem) bool { return false }
	}
	return func(item entity.LineItem) bool { return Matches(item, product) }
}
