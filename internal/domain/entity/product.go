package entity

import "github.com/shopspring/decimal"

// DefaultUnit etiqueta de unidad cuando el catálogo no define una.
const DefaultUnit = "unité"

// Product representa un producto del catálogo externo (solo lectura para el motor).
// Name es la clave de unión con las líneas de factura; Stock es una única foto del inventario actual.
type Product struct {
	ID            string
	Name          string
	Category      string
	Stock         decimal.Decimal // cantidad disponible actual (no indexada en el tiempo)
	PurchasePrice decimal.Decimal // costo unitario
	Unit          string          // vacío -> DefaultUnit
}

// UnitOr devuelve la unidad del producto o fallback si está vacía.
func (p Product) UnitOr(fallback string) string {
	if p.Unit != "" {
		return p.Unit
	}
	return fallback
}
