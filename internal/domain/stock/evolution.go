package stock

import (
	"time"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// evolutionWindow meses de la ventana de evolución, terminando en el mes actual.
const evolutionWindow = 6

// StockEvolution construye la evolución de stock del producto productID en los 6 meses
// calendario que terminan en el mes de now (el más antiguo primero).
//
// InitialStock es la foto actual del producto en todos los meses; no existe un stock
// histórico. Si productID no corresponde a un producto concreto del catálogo devuelve
// una secuencia vacía para que el llamador muestre "seleccione un producto".
func StockEvolution(
	products []entity.Product,
	invoices []entity.Invoice,
	productID string,
	now time.Time,
	labels MonthLabels,
) []StockEvolutionPoint {
	points := make([]StockEvolutionPoint, 0, evolutionWindow)
	if IsAllProducts(productID) {
		return points
	}
	product, ok := findProduct(products, productID)
	if !ok {
		return points
	}

	for i := evolutionWindow - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		sold := Aggregate(invoices, InMonth(month.Year(), month.Month()), product.Name).Quantity
		points = append(points, StockEvolutionPoint{
			Month:        labels.Label(month.Month()),
			InitialStock: product.Stock,
			Sold:         sold,
			Remaining:    clampedRemaining(product.Stock, sold),
		})
	}
	return points
}
