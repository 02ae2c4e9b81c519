package stockanalytics_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
	"github.com/jhoicas/stock-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

var fixedNow = time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fixture: Widget vendido en marzo 2024 y noviembre 2023; Gadget sin ventas.
func fixtureStore() *memory.Store {
	products := []entity.Product{
		{ID: "p1", Name: "Widget", Category: "Outils", Stock: dec("100"), PurchasePrice: dec("10"), Unit: "kg"},
		{ID: "p2", Name: "Gadget", Category: "Outils", Stock: dec("5"), PurchasePrice: dec("2")},
	}
	invoices := []entity.Invoice{
		{ID: "i1", Date: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC), Items: []entity.LineItem{
			{Description: "Widget", Quantity: dec("20"), Total: dec("400")},
		}},
		{ID: "i2", Date: time.Date(2023, time.November, 10, 10, 0, 0, 0, time.UTC), Items: []entity.LineItem{
			{Description: "Widget", Quantity: dec("5"), Total: dec("100")},
		}},
	}
	return memory.NewStore(products, invoices)
}

func newUseCase(store *memory.Store) *stockanalytics.UseCase {
	return stockanalytics.NewUseCase(store, store, stock.DefaultMonthLabels, logger.Nop()).
		WithClock(func() time.Time { return fixedNow })
}

// failingRepo simula una caída de la base de datos.
type failingRepo struct{}

var errDown = errors.New("conexión rechazada")

func (failingRepo) ListAll(context.Context) ([]entity.Product, error)       { return nil, errDown }
func (failingRepo) ListWithItems(context.Context) ([]entity.Invoice, error) { return nil, errDown }

// fakeRenderer registra el documento recibido y devuelve out/err, o entra en pánico.
type fakeRenderer struct {
	mu    sync.Mutex
	doc   stockanalytics.ReportDocument
	out   []byte
	err   error
	panic bool
}

func (f *fakeRenderer) RenderStockReport(_ context.Context, doc stockanalytics.ReportDocument) ([]byte, error) {
	f.mu.Lock()
	f.doc = doc
	f.mu.Unlock()
	if f.panic {
		panic("fuente no encontrada")
	}
	return f.out, f.err
}

func (f *fakeRenderer) received() stockanalytics.ReportDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc
}

type fakeSpreadsheet struct {
	wb  stockanalytics.Workbook
	err error
}

func (f *fakeSpreadsheet) ExportStockWorkbook(_ context.Context, wb stockanalytics.Workbook) ([]byte, error) {
	f.wb = wb
	if f.err != nil {
		return nil, f.err
	}
	return []byte("xlsx"), nil
}
