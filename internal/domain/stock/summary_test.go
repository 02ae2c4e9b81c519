package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

func TestSummarize_EscenarioCompleto(t *testing.T) {
	products := []entity.Product{product("p1", "Widget", "100", "10")}
	invoices := []entity.Invoice{
		invoice("i1", date(2024, time.March, 5), item("Widget", "20", "400")),
	}

	stats := stock.Summarize(products, invoices, stock.AllProducts)

	assertDec(t, "100", stats.TotalStockInitial, "totalStockInitial")
	assertDec(t, "1000", stats.TotalPurchaseValue, "totalPurchaseValue")
	assertDec(t, "400", stats.TotalSalesValue, "totalSalesValue")
	assertDec(t, "20", stats.TotalQuantitySold, "totalQuantitySold")
	assertDec(t, "80", stats.TotalRemainingStock, "totalRemainingStock")
	assert.Equal(t, 0, stats.DormantProducts)
	assertDec(t, "-600", stats.GrossMargin, "grossMargin")
}

func TestSummarize_RestanteSinAcotar(t *testing.T) {
	products := []entity.Product{product("p1", "Sobrevendido", "5", "10")}
	invoices := []entity.Invoice{
		invoice("i1", date(2024, time.March, 5), item("Sobrevendido", "8", "160")),
	}

	stats := stock.Summarize(products, invoices, stock.AllProducts)
	assertDec(t, "-3", stats.TotalRemainingStock, "el resumen no acota")

	evolution := stock.StockEvolution(products, invoices, "p1", date(2024, time.March, 20), stock.DefaultMonthLabels)
	assertDec(t, "0", evolution[len(evolution)-1].Remaining, "la evolución sí acota")
	assert.Empty(t, stock.Distribution(products, invoices, stock.ModeStock), "la distribución acota a 0 y descarta")
}

func TestSummarize_FiltroYDurmientes(t *testing.T) {
	products := []entity.Product{
		product("p1", "Widget", "100", "10"),
		product("p2", "Durmiente", "7", "2"),
		product("p3", "Otro durmiente", "1", "1"),
	}
	invoices := []entity.Invoice{
		invoice("i1", date(2024, time.March, 5), item("Widget", "20", "400")),
	}

	all := stock.Summarize(products, invoices, "")
	assert.Equal(t, 2, all.DormantProducts)
	assertDec(t, "108", all.TotalStockInitial, "stock total")
	assertDec(t, "1015", all.TotalPurchaseValue, "compra total")

	one := stock.Summarize(products, invoices, "p2")
	assert.Equal(t, 1, one.DormantProducts)
	assertDec(t, "7", one.TotalStockInitial, "solo p2")
	assertDec(t, "-14", one.GrossMargin, "0 - 7*2")

	none := stock.Summarize(products, invoices, "zzz")
	assert.Equal(t, 0, none.DormantProducts)
	assertDec(t, "0", none.TotalStockInitial, "ID desconocido no incluye productos")
}

func TestSummarize_EntradasVacias(t *testing.T) {
	stats := stock.Summarize(nil, nil, stock.AllProducts)
	assertDec(t, "0", stats.GrossMargin, "margen")
	assertDec(t, "0", stats.TotalRemainingStock, "restante")
	assert.Zero(t, stats.DormantProducts)
}
