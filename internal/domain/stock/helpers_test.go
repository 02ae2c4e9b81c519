package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func item(desc string, qty, total string) entity.LineItem {
	return entity.LineItem{Description: desc, Quantity: dec(qty), Total: dec(total)}
}

func invoice(id string, at time.Time, items ...entity.LineItem) entity.Invoice {
	return entity.Invoice{ID: id, Date: at, Items: items}
}

func product(id, name, stockQty, price string) entity.Product {
	return entity.Product{ID: id, Name: name, Stock: dec(stockQty), PurchasePrice: dec(price)}
}

// assertDec compara decimales por valor (no por representación interna).
func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, got.Equal(dec(want)), "%s: esperado %s, obtenido %s", msg, want, got.String())
}
