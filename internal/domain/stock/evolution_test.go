package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

func TestStockEvolution_VentanaDeSeisMesesCruzaElAnio(t *testing.T) {
	products := []entity.Product{product("p1", "Widget", "50", "10")}
	invoices := []entity.Invoice{
		invoice("i1", date(2023, time.October, 2), item("Widget", "99", "1")), // vende más que el stock
		invoice("i0", date(2023, time.September, 30), item("Widget", "7", "1")), // fuera de la ventana
		invoice("i2", date(2023, time.November, 20), item("Widget", "5", "100")),
		invoice("i3", date(2024, time.February, 14), item("Widget", "12", "240"), item("Gadget", "3", "30")),
		invoice("i4", date(2024, time.February, 28), item("Widget", "3", "60")),
		invoice("i5", date(2024, time.April, 1), item("Widget", "1", "20")), // futuro
	}
	now := date(2024, time.March, 18)

	points := stock.StockEvolution(products, invoices, "p1", now, stock.DefaultMonthLabels)

	require.Len(t, points, 6)
	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Month)
		assertDec(t, "50", p.InitialStock, "el stock inicial es la foto actual en todos los meses")
	}
	assert.Equal(t, []string{"oct.", "nov.", "déc.", "janv.", "févr.", "mars"}, labels)

	assertDec(t, "99", points[0].Sold, "octubre")
	assertDec(t, "0", points[0].Remaining, "octubre acotado a cero")
	assertDec(t, "5", points[1].Sold, "noviembre")
	assertDec(t, "45", points[1].Remaining, "noviembre")
	assertDec(t, "15", points[4].Sold, "febrero")
	assertDec(t, "35", points[4].Remaining, "febrero")
	assertDec(t, "0", points[5].Sold, "marzo")
	assertDec(t, "50", points[5].Remaining, "marzo")
}

func TestStockEvolution_AcotaElRestanteACero(t *testing.T) {
	products := []entity.Product{product("p1", "Widget", "5", "10")}
	invoices := []entity.Invoice{invoice("i1", date(2024, time.March, 5), item("Widget", "8", "160"))}

	points := stock.StockEvolution(products, invoices, "p1", date(2024, time.March, 31), stock.DefaultMonthLabels)

	require.Len(t, points, 6)
	assertDec(t, "8", points[5].Sold, "vendido")
	assertDec(t, "0", points[5].Remaining, "restante acotado")
}

func TestStockEvolution_SinSeleccionDevuelveVacio(t *testing.T) {
	products := []entity.Product{product("p1", "Widget", "5", "10")}
	now := date(2024, time.March, 31)

	for _, id := range []string{"", stock.AllProducts, "desconocido"} {
		points := stock.StockEvolution(products, nil, id, now, stock.DefaultMonthLabels)
		assert.NotNil(t, points, "id %q", id)
		assert.Empty(t, points, "id %q", id)
	}
}
