package repository

import (
	"context"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// InvoiceRepository puerto de lectura del libro de facturas externo.
// Cada factura se devuelve con sus líneas en orden; las facturas sin líneas también se incluyen.
type InvoiceRepository interface {
	ListWithItems(ctx context.Context) ([]entity.Invoice, error)
}
