package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-analytics/internal/domain/entity"
)

// seedFile formato JSON del archivo de datos iniciales.
type seedFile struct {
	Products []seedProduct `json:"products"`
	Invoices []seedInvoice `json:"invoices"`
}

type seedProduct struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Stock         decimal.Decimal `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Unit          string          `json:"unit"`
}

type seedInvoice struct {
	ID    string         `json:"id"`
	Date  string         `json:"date"` // YYYY-MM-DD o RFC3339
	Items []seedLineItem `json:"items"`
}

type seedLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// LoadSeedFile lee un archivo JSON de datos iniciales y construye el Store.
func LoadSeedFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: abrir %s: %w", path, err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// LoadSeed decodifica los datos iniciales desde r.
func LoadSeed(r io.Reader) (*Store, error) {
	var seed seedFile
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("seed: decodificar: %w", err)
	}

	products := make([]entity.Product, 0, len(seed.Products))
	for _, p := range seed.Products {
		products = append(products, entity.Product{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category,
			Stock:         p.Stock,
			PurchasePrice: p.PurchasePrice,
			Unit:          p.Unit,
		})
	}

	invoices := make([]entity.Invoice, 0, len(seed.Invoices))
	for _, inv := range seed.Invoices {
		at, err := parseDate(inv.Date)
		if err != nil {
			return nil, fmt.Errorf("seed: factura %s: %w", inv.ID, err)
		}
		items := make([]entity.LineItem, 0, len(inv.Items))
		for _, it := range inv.Items {
			items = append(items, entity.LineItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				Total:       it.Total,
			})
		}
		invoices = append(invoices, entity.Invoice{ID: inv.ID, Date: at, Items: items})
	}

	return NewStore(products, invoices), nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}
	return t, nil
}
