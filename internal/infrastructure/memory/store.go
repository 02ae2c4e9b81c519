// Package memory implementa el catálogo y el libro de facturas en memoria, cargables desde
// un archivo JSON. Se usa en desarrollo (DATA_SOURCE=memory) y en los tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Store)(nil)
	_ repository.InvoiceRepository = (*Store)(nil)
)

// Store catálogo y libro de facturas en memoria. Devuelve copias para que los llamadores
// no puedan alterar el estado compartido.
type Store struct {
	mu       sync.RWMutex
	products []entity.Product
	invoices []entity.Invoice
}

// NewStore construye un Store con los datos iniciales indicados.
func NewStore(products []entity.Product, invoices []entity.Invoice) *Store {
	s := &Store{}
	s.Replace(products, invoices)
	return s
}

// Replace sustituye catálogo y libro completos.
func (s *Store) Replace(products []entity.Product, invoices []entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = copyProducts(products)
	s.invoices = copyInvoices(invoices)
}

// ListAll devuelve el catálogo en su orden original.
func (s *Store) ListAll(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.products), nil
}

// ListWithItems devuelve todas las facturas con sus líneas.
func (s *Store) ListWithItems(_ context.Context) ([]entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyInvoices(s.invoices), nil
}

func copyProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	copy(out, in)
	return out
}

func copyInvoices(in []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, len(in))
	for i, inv := range in {
		out[i] = inv
		out[i].Items = append([]entity.LineItem(nil), inv.Items...)
	}
	return out
}
