package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// Summarize calcula los KPIs globales para productFilter (ID o AllProducts).
//
// TotalRemainingStock acumula stock - vendido SIN acotar a cero por producto, a
// diferencia de la evolución y la distribución de stock que sí acotan. Un producto es
// durmiente cuando su cantidad vendida en todo el historial es cero.
func Summarize(products []entity.Product, invoices []entity.Invoice, productFilter string) SummaryStats {
	stats := SummaryStats{
		TotalStockInitial:   decimal.Zero,
		TotalPurchaseValue:  decimal.Zero,
		TotalSalesValue:     decimal.Zero,
		TotalQuantitySold:   decimal.Zero,
		TotalRemainingStock: decimal.Zero,
	}

	all := IsAllProducts(productFilter)
	for _, p := range products {
		if !all && p.ID != productFilter {
			continue
		}
		stats.TotalStockInitial = stats.TotalStockInitial.Add(p.Stock)
		stats.TotalPurchaseValue = stats.TotalPurchaseValue.Add(p.Stock.Mul(p.PurchasePrice))

		sold := Aggregate(invoices, nil, p.Name)
		stats.TotalQuantitySold = stats.TotalQuantitySold.Add(sold.Quantity)
		stats.TotalSalesValue = stats.TotalSalesValue.Add(sold.Value)
		stats.TotalRemainingStock = stats.TotalRemainingStock.Add(unclampedRemaining(p.Stock, sold.Quantity))

		if sold.Quantity.IsZero() {
			stats.DormantProducts++
		}
	}

	stats.GrossMargin = stats.TotalSalesValue.Sub(stats.TotalPurchaseValue)
	return stats
}
