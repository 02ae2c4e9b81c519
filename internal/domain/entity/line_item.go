package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de una factura.
// Description se espera igual al Name de un producto.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Total       decimal.Decimal // valor monetario de la línea
}
