package repository

import (
	"context"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo externo.
// El orden devuelto es el orden del catálogo y las vistas lo conservan.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
}
