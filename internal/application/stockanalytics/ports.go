package stockanalytics

import (
	"context"
	"time"

	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

// ReportDocument resumen ya formateado (números y fechas según el idioma) que recibe el renderer.
type ReportDocument struct {
	Title       string
	CompanyName string
	GeneratedOn string // ej. "Généré le 05/03/2024"
	Sections    []ReportSection
}

// ReportSection bloque de indicadores del reporte.
type ReportSection struct {
	Heading string
	KPIs    []ReportKPI
	Table   *ReportTable
}

// ReportKPI par etiqueta/valor; Highlight marca los indicadores principales.
type ReportKPI struct {
	Label     string
	Value     string
	Highlight bool
}

// ReportTable tabla simple de texto (cabecera + filas).
type ReportTable struct {
	Header []string
	Rows   [][]string
}

// ReportRenderer sink externo que convierte el documento en bytes (PDF).
type ReportRenderer interface {
	RenderStockReport(ctx context.Context, doc ReportDocument) ([]byte, error)
}

// Workbook vistas crudas para la exportación a hoja de cálculo.
type Workbook struct {
	Year        int
	Product     string
	GeneratedAt time.Time
	Summary     stock.SummaryStats
	Monthly     []stock.MonthlySalesPoint
	Heatmap     []stock.HeatmapCell
	Margins     []stock.MarginRecord
}

// SpreadsheetExporter serializa un Workbook (XLSX).
type SpreadsheetExporter interface {
	ExportStockWorkbook(ctx context.Context, wb Workbook) ([]byte, error)
}
