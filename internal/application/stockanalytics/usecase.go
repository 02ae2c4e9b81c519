// Package stockanalytics orquesta la carga del catálogo y del libro de facturas y expone
// las vistas del motor de stock como DTOs, además de la exportación del reporte.
package stockanalytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-analytics/internal/application/dto"
	"github.com/jhoicas/stock-analytics/internal/domain"
	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/repository"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

var validate = validator.New()

// UseCase expone las vistas analíticas de stock. Cada llamada relee catálogo y libro
// completos y recalcula la vista; no hay caché compartida entre llamadas.
type UseCase struct {
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	labels      stock.MonthLabels
	now         func() time.Time
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	labels stock.MonthLabels,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		labels:      labels,
		now:         time.Now,
		log:         log,
	}
}

// WithClock fija el reloj usado para el mes actual y el año por defecto.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Summary KPIs globales para el producto indicado (o todos).
func (uc *UseCase) Summary(ctx context.Context, req dto.FilterRequest) (*dto.SummaryDTO, error) {
	f, err := uc.filter(req)
	if err != nil {
		return nil, err
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := toSummaryDTO(f.Product, stock.Summarize(products, invoices, f.Product))
	return &out, nil
}

// StockEvolution evolución de 6 meses del producto seleccionado. Sin producto concreto
// devuelve Points vacío con SelectionRequired=true; un ID desconocido también da Points vacío.
func (uc *UseCase) StockEvolution(ctx context.Context, req dto.FilterRequest) (*dto.StockEvolutionDTO, error) {
	f, err := uc.filter(req)
	if err != nil {
		return nil, err
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := uc.evolution(products, invoices, f.Product)
	return &out, nil
}

// Distribution reparto de ventas (mode=sales) o de valor de stock restante (mode=stock).
func (uc *UseCase) Distribution(ctx context.Context, req dto.DistributionRequest) (*dto.DistributionDTO, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	mode := stock.DistributionMode(req.Mode)
	out := toDistributionDTO(mode, stock.Distribution(products, invoices, mode))
	return &out, nil
}

// Margins margen histórico por producto.
func (uc *UseCase) Margins(ctx context.Context) (*dto.MarginsDTO, error) {
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := toMarginsDTO(stock.Margins(products, invoices))
	return &out, nil
}

// MonthlyTrend 12 meses del año filtrado.
func (uc *UseCase) MonthlyTrend(ctx context.Context, req dto.FilterRequest) (*dto.MonthlyTrendDTO, error) {
	f, err := uc.filter(req)
	if err != nil {
		return nil, err
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := toMonthlyTrendDTO(f, stock.MonthlyTrend(products, invoices, f.Year, f.Product, uc.labels))
	return &out, nil
}

// Heatmap grid productos × meses del año filtrado.
func (uc *UseCase) Heatmap(ctx context.Context, req dto.FilterRequest) (*dto.HeatmapDTO, error) {
	f, err := uc.filter(req)
	if err != nil {
		return nil, err
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := toHeatmapDTO(f.Year, products, uc.labels, stock.Heatmap(products, invoices, f.Year, uc.labels))
	return &out, nil
}

// AvailableYears años con facturas, descendente.
func (uc *UseCase) AvailableYears(ctx context.Context) (*dto.YearsDTO, error) {
	invoices, err := uc.invoiceRepo.ListWithItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock analytics: libro de facturas: %w", err)
	}
	return &dto.YearsDTO{Years: stock.AvailableYears(invoices)}, nil
}

// Dashboard todas las vistas con un mismo filtro y una sola carga de datos.
func (uc *UseCase) Dashboard(ctx context.Context, req dto.FilterRequest) (*dto.DashboardDTO, error) {
	f, err := uc.filter(req)
	if err != nil {
		return nil, err
	}
	products, invoices, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Product:           f.Product,
		Year:              f.Year,
		Period:            string(f.Period),
		AvailableYears:    stock.AvailableYears(invoices),
		Summary:           toSummaryDTO(f.Product, stock.Summarize(products, invoices, f.Product)),
		SalesDistribution: toDistributionDTO(stock.ModeSales, stock.Distribution(products, invoices, stock.ModeSales)),
		StockDistribution: toDistributionDTO(stock.ModeStock, stock.Distribution(products, invoices, stock.ModeStock)),
		Margins:           toMarginsDTO(stock.Margins(products, invoices)),
		Monthly:           toMonthlyTrendDTO(f, stock.MonthlyTrend(products, invoices, f.Year, f.Product, uc.labels)),
		Heatmap:           toHeatmapDTO(f.Year, products, uc.labels, stock.Heatmap(products, invoices, f.Year, uc.labels)),
		Evolution:         uc.evolution(products, invoices, f.Product),
	}, nil
}

func (uc *UseCase) evolution(products []entity.Product, invoices []entity.Invoice, productID string) dto.StockEvolutionDTO {
	out := dto.StockEvolutionDTO{
		ProductID:         productID,
		SelectionRequired: stock.IsAllProducts(productID),
		Points:            []dto.StockEvolutionPointDTO{},
	}
	if out.SelectionRequired {
		return out
	}
	for _, p := range products {
		if p.ID == productID {
			out.ProductName = p.Name
			out.Unit = p.UnitOr(entity.DefaultUnit)
			break
		}
	}
	out.Points = toEvolutionPointsDTO(stock.StockEvolution(products, invoices, productID, uc.now(), uc.labels))
	return out
}

// filter valida la petición y aplica los valores por defecto (producto "all", año actual).
func (uc *UseCase) filter(req dto.FilterRequest) (stock.Filter, error) {
	if err := validate.Struct(req); err != nil {
		return stock.Filter{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	f := stock.Filter{
		Product: req.Product,
		Year:    req.Year,
		Period:  stock.Period(req.Period),
		Search:  req.Search,
	}
	if stock.IsAllProducts(f.Product) {
		f.Product = stock.AllProducts
	}
	if f.Year == 0 {
		f.Year = uc.now().Year()
	}
	if f.Period == "" {
		f.Period = stock.PeriodMonth
	}
	return f, nil
}

// load lee catálogo y libro de facturas en paralelo.
func (uc *UseCase) load(ctx context.Context) ([]entity.Product, []entity.Invoice, error) {
	var (
		products []entity.Product
		invoices []entity.Invoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.productRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("catálogo: %w", err)
		}
		products = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.invoiceRepo.ListWithItems(gctx)
		if err != nil {
			return fmt.Errorf("libro de facturas: %w", err)
		}
		invoices = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("stock analytics: %w", err)
	}

	uc.log.Debug().
		Int("products", len(products)).
		Int("invoices", len(invoices)).
		Msg("catálogo y libro cargados")
	return products, invoices, nil
}
