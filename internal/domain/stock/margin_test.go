package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

func TestMargins_CalculaYFiltra(t *testing.T) {
	kg := product("p2", "Harina", "100", "3")
	kg.Unit = "kg"
	products := []entity.Product{
		product("p1", "Widget", "100", "10"),
		kg,
		product("p3", "Durmiente", "5", "1"),
	}
	invoices := []entity.Invoice{
		invoice("i1", date(2023, time.January, 3), item("Widget", "20", "400")),
		invoice("i2", date(2024, time.July, 9), item("Harina", "10", "25"), item("Widget", "1", "15")),
	}

	records := stock.Margins(products, invoices)

	require.Len(t, records, 2)
	assert.Equal(t, "Widget", records[0].ProductName)
	assertDec(t, "415", records[0].SalesValue, "ventas Widget")
	assertDec(t, "210", records[0].PurchaseValue, "compra Widget")
	assertDec(t, "205", records[0].Margin, "margen Widget")
	assert.Equal(t, entity.DefaultUnit, records[0].Unit)

	assert.Equal(t, "Harina", records[1].ProductName)
	assertDec(t, "-5", records[1].Margin, "margen negativo se conserva")
	assert.Equal(t, "kg", records[1].Unit)
}

func TestMargins_SinFacturas(t *testing.T) {
	products := []entity.Product{product("p1", "Widget", "100", "10")}
	assert.Empty(t, stock.Margins(products, nil))
}
