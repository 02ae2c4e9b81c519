package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

func TestBuilders_SonDeterministas(t *testing.T) {
	products := []entity.Product{
		product("p1", "Widget", "100", "10.5"),
		product("p2", "Gadget", "3", "7"),
		product("p3", "Durmiente", "9", "1"),
	}
	invoices := []entity.Invoice{
		invoice("i1", date(2024, time.January, 5), item("Widget", "20", "400"), item("Gadget", "5", "90")),
		invoice("i2", date(2024, time.March, 7), item("Widget", "3", "61.25")),
		invoice("i3", date(2023, time.November, 7), item("Gadget", "1", "18")),
	}
	now := date(2024, time.March, 20)

	for i := 0; i < 3; i++ {
		assert.Equal(t,
			stock.StockEvolution(products, invoices, "p1", now, stock.DefaultMonthLabels),
			stock.StockEvolution(products, invoices, "p1", now, stock.DefaultMonthLabels))
		assert.Equal(t,
			stock.Distribution(products, invoices, stock.ModeSales),
			stock.Distribution(products, invoices, stock.ModeSales))
		assert.Equal(t,
			stock.Distribution(products, invoices, stock.ModeStock),
			stock.Distribution(products, invoices, stock.ModeStock))
		assert.Equal(t, stock.Margins(products, invoices), stock.Margins(products, invoices))
		assert.Equal(t,
			stock.MonthlyTrend(products, invoices, 2024, stock.AllProducts, stock.DefaultMonthLabels),
			stock.MonthlyTrend(products, invoices, 2024, stock.AllProducts, stock.DefaultMonthLabels))
		assert.Equal(t,
			stock.Heatmap(products, invoices, 2024, stock.DefaultMonthLabels),
			stock.Heatmap(products, invoices, 2024, stock.DefaultMonthLabels))
		assert.Equal(t,
			stock.Summarize(products, invoices, stock.AllProducts),
			stock.Summarize(products, invoices, stock.AllProducts))
	}
}

func TestAvailableYears_DescendenteSinDuplicados(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("i1", date(2022, time.May, 1)),
		invoice("i2", date(2024, time.May, 1)),
		invoice("i3", date(2022, time.June, 1)),
		invoice("i4", date(2023, time.May, 1)),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, stock.AvailableYears(invoices))
	assert.Empty(t, stock.AvailableYears(nil))
}
