package stock

import "github.com/jhoicas/stock-analytics/internal/domain/entity"

// Margins calcula el margen bruto histórico por producto: ventas menos cantidad vendida
// valorizada al precio de compra. Omite los productos sin ventas positivas.
func Margins(products []entity.Product, invoices []entity.Invoice) []MarginRecord {
	records := make([]MarginRecord, 0, len(products))
	for _, p := range products {
		sales := Aggregate(invoices, nil, p.Name)
		if !sales.Value.IsPositive() {
			continue
		}
		purchaseValue := sales.Quantity.Mul(p.PurchasePrice)
		records = append(records, MarginRecord{
			ProductName:   p.Name,
			Margin:        sales.Value.Sub(purchaseValue),
			SalesValue:    sales.Value,
			PurchaseValue: purchaseValue,
			Unit:          p.UnitOr(entity.DefaultUnit),
		})
	}
	return records
}
