package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lectura del libro de facturas sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// listInvoicesQuery facturas con sus líneas en una sola pasada.
// LEFT JOIN: una factura sin líneas sigue contando como pedido del mes.
func listInvoicesQuery() (string, []any, error) {
	return sq.Select(
		"i.id",
		"i.date",
		"li.description",
		"li.quantity",
		"li.total",
	).
		From("invoices i").
		LeftJoin("invoice_items li ON li.invoice_id = i.id").
		OrderBy("i.date ASC", "i.id ASC", "li.position ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// ListWithItems devuelve todas las facturas con sus líneas, agrupando las filas por factura.
func (r *InvoiceRepo) ListWithItems(ctx context.Context) ([]entity.Invoice, error) {
	query, args, err := listInvoicesQuery()
	if err != nil {
		return nil, fmt.Errorf("build list invoices: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0)
	for rows.Next() {
		var (
			id          string
			date        time.Time
			description *string
			quantity    decimal.NullDecimal
			total       decimal.NullDecimal
		)
		if err := rows.Scan(&id, &date, &description, &quantity, &total); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}

		if n := len(invoices); n == 0 || invoices[n-1].ID != id {
			invoices = append(invoices, entity.Invoice{ID: id, Date: date, Items: []entity.LineItem{}})
		}
		if description == nil {
			continue
		}
		last := &invoices[len(invoices)-1]
		last.Items = append(last.Items, entity.LineItem{
			Description: *description,
			Quantity:    quantity.Decimal,
			Total:       total.Decimal,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return invoices, nil
}
