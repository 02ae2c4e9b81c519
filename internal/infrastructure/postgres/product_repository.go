package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura del catálogo sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// listProductsQuery catálogo completo en orden de alta.
func listProductsQuery() (string, []any, error) {
	return sq.Select(
		"p.id",
		"p.name",
		"COALESCE(p.category, '')",
		"p.stock",
		"p.purchase_price",
		"COALESCE(p.unit, '')",
	).
		From("products p").
		OrderBy("p.created_at ASC", "p.id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// ListAll devuelve todos los productos del catálogo.
func (r *ProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	query, args, err := listProductsQuery()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Stock, &p.PurchasePrice, &p.Unit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
