package stockanalytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-analytics/internal/application/dto"
	"github.com/jhoicas/stock-analytics/internal/domain"
	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
	"github.com/jhoicas/stock-analytics/pkg/locale"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

// Tipos de contenido de las exportaciones.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportConfig datos fijos impresos en el reporte.
type ReportConfig struct {
	CompanyName string
	Currency    string
}

// ExportResult resultado de una exportación asíncrona. Err != nil indica fallo;
// en ese caso Content está vacío.
type ExportResult struct {
	ID          string
	Filename    string
	ContentType string
	Content     []byte
	Err         error
}

// ReportUseCase genera el reporte exportable a partir del resumen de stock.
// Un fallo de exportación nunca altera las vistas ya calculadas.
type ReportUseCase struct {
	views       *UseCase
	renderer    ReportRenderer
	spreadsheet SpreadsheetExporter
	format      *locale.Formatter
	cfg         ReportConfig
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso inyectando renderer PDF y exportador XLSX.
func NewReportUseCase(
	views *UseCase,
	renderer ReportRenderer,
	spreadsheet SpreadsheetExporter,
	format *locale.Formatter,
	cfg ReportConfig,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		views:       views,
		renderer:    renderer,
		spreadsheet: spreadsheet,
		format:      format,
		cfg:         cfg,
		log:         log,
	}
}

// ExportReport calcula el resumen de forma síncrona y lanza el renderizado en segundo plano.
// done se invoca exactamente una vez con el PDF o con un error envuelto en
// domain.ErrExportFailed. Devuelve el ID de la exportación, o error si el filtro es
// inválido o los datos no se pudieron cargar (en ese caso done no se invoca).
func (uc *ReportUseCase) ExportReport(ctx context.Context, req dto.FilterRequest, done func(ExportResult)) (string, error) {
	f, err := uc.views.filter(req)
	if err != nil {
		return "", err
	}
	products, invoices, err := uc.views.load(ctx)
	if err != nil {
		return "", err
	}

	now := uc.views.now()
	doc := uc.buildDocument(f, products, invoices, now)
	id := uuid.NewString()
	filename := "Rapport_Stock_Avance_" + strings.ReplaceAll(uc.format.Date(now), "/", "-") + ".pdf"
	if done == nil {
		done = func(ExportResult) {}
	}

	go func() {
		res := ExportResult{ID: id, Filename: filename, ContentType: ContentTypePDF}
		content, err := uc.render(ctx, doc)
		if err != nil {
			uc.log.Error().Err(err).Str("export_id", id).Msg("exportación del reporte fallida")
			res.Err = fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
			done(res)
			return
		}
		uc.log.Info().Str("export_id", id).Int("bytes", len(content)).Msg("reporte exportado")
		res.Content = content
		done(res)
	}()
	return id, nil
}

// ExportSpreadsheet exporta tendencia mensual, heatmap, márgenes y resumen a XLSX.
func (uc *ReportUseCase) ExportSpreadsheet(ctx context.Context, req dto.FilterRequest) ([]byte, string, error) {
	f, err := uc.views.filter(req)
	if err != nil {
		return nil, "", err
	}
	products, invoices, err := uc.views.load(ctx)
	if err != nil {
		return nil, "", err
	}

	labels := uc.views.labels
	wb := Workbook{
		Year:        f.Year,
		Product:     productLabel(products, f.Product, labelsFor(uc.lang()).AllProducts),
		GeneratedAt: uc.views.now(),
		Summary:     stock.Summarize(products, invoices, f.Product),
		Monthly:     stock.MonthlyTrend(products, invoices, f.Year, f.Product, labels),
		Heatmap:     stock.Heatmap(products, invoices, f.Year, labels),
		Margins:     stock.Margins(products, invoices),
	}
	content, err := uc.spreadsheet.ExportStockWorkbook(ctx, wb)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}
	return content, fmt.Sprintf("Stock_%d.xlsx", f.Year), nil
}

// render aísla al llamador de un pánico del renderer.
func (uc *ReportUseCase) render(ctx context.Context, doc ReportDocument) (content []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, err = nil, fmt.Errorf("renderer: %v", r)
		}
	}()
	return uc.renderer.RenderStockReport(ctx, doc)
}

// buildDocument formatea el resumen según el idioma del reporte.
func (uc *ReportUseCase) buildDocument(f stock.Filter, products []entity.Product, invoices []entity.Invoice, now time.Time) ReportDocument {
	l := labelsFor(uc.lang())
	stats := stock.Summarize(products, invoices, f.Product)
	money := func(v string) string {
		if uc.cfg.Currency == "" {
			return v
		}
		return v + " " + uc.cfg.Currency
	}

	global := ReportSection{
		Heading: l.GlobalStats + " · " + productLabel(products, f.Product, l.AllProducts),
		KPIs: []ReportKPI{
			{Label: l.GrossMargin, Value: money(uc.format.Decimal(stats.GrossMargin)), Highlight: true},
			{Label: l.RemainingStock, Value: uc.format.Decimal(stats.TotalRemainingStock), Highlight: true},
			{Label: l.StockInitial, Value: uc.format.Decimal(stats.TotalStockInitial)},
			{Label: l.PurchaseValue, Value: money(uc.format.Decimal(stats.TotalPurchaseValue))},
			{Label: l.SalesValue, Value: money(uc.format.Decimal(stats.TotalSalesValue))},
			{Label: l.QtySold, Value: uc.format.Decimal(stats.TotalQuantitySold)},
			{Label: l.Dormant, Value: fmt.Sprintf("%d", stats.DormantProducts)},
		},
	}

	sections := []ReportSection{global}
	if margins := stock.Margins(products, invoices); len(margins) > 0 {
		table := &ReportTable{Header: []string{l.Product, l.Sales, l.Purchase, l.Margin}}
		for _, m := range margins {
			table.Rows = append(table.Rows, []string{
				m.ProductName,
				uc.format.Decimal(m.SalesValue),
				uc.format.Decimal(m.PurchaseValue),
				uc.format.Decimal(m.Margin),
			})
		}
		sections = append(sections, ReportSection{Heading: l.Margins, Table: table})
	}

	return ReportDocument{
		Title:       l.Title,
		CompanyName: uc.cfg.CompanyName,
		GeneratedOn: l.GeneratedOn + " " + uc.format.Date(now),
		Sections:    sections,
	}
}

func (uc *ReportUseCase) lang() string {
	base, _ := uc.format.Tag().Base()
	return base.String()
}

func productLabel(products []entity.Product, productID, all string) string {
	if stock.IsAllProducts(productID) {
		return all
	}
	for _, p := range products {
		if p.ID == productID {
			return p.Name
		}
	}
	return productID
}
