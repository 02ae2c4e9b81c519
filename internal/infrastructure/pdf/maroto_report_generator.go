// Package pdf implementa el renderer del reporte de stock avanzado con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Empresa     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: encabezado                                          │
//	│    KPI destacado ............................ valor          │
//	│    KPI .......................................valor          │
//	│  SECCIÓN: tabla Producto | Ventas | Compra | Margen           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 139, Green: 92, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHeader  = &props.Color{Red: 91, Green: 60, Blue: 196}
)

const gridSize = 12

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa stockanalytics.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RenderStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderStockReport(_ context.Context, doc stockanalytics.ReportDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range doc.Sections {
		m.AddRows(sectionRows(s)...)
		m.AddRows(line.NewRow(4))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + empresa (izq) y fecha de generación (der).
func headerRow(doc stockanalytics.ReportDocument) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.CompanyName, "—"), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(doc.GeneratedOn, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionRows(s stockanalytics.ReportSection) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(gridSize).Add(
			text.New(s.Heading, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, k := range s.KPIs {
		rows = append(rows, kpiRow(k))
	}
	if s.Table != nil {
		rows = append(rows, tableRows(s.Table)...)
	}
	return rows
}

// kpiRow: etiqueta a la izquierda, valor alineado a la derecha.
// Los KPI destacados van en negrita y color primario.
func kpiRow(k stockanalytics.ReportKPI) core.Row {
	labelProps := props.Text{Size: 9, Top: 1, Left: 2}
	valueProps := props.Text{Size: 9, Top: 1, Align: align.Right, Right: 2}
	height := 6.0
	if k.Highlight {
		labelProps.Style = fontstyle.Bold
		labelProps.Size = 11
		valueProps.Style = fontstyle.Bold
		valueProps.Size = 11
		valueProps.Color = colorPrimary
		height = 8
	}
	return row.New(height).Add(
		col.New(7).Add(text.New(k.Label, labelProps)),
		col.New(5).Add(text.New(k.Value, valueProps)),
	)
}

// tableRows: cabecera sobre fondo de color + una fila por registro.
// La primera columna se lleva el resto del grid.
func tableRows(t *stockanalytics.ReportTable) []core.Row {
	sizes := columnSizes(len(t.Header))
	if len(sizes) == 0 {
		return nil
	}

	header := make([]core.Col, 0, len(sizes))
	for i, h := range t.Header {
		header = append(header, col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: cellAlign(i),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	rows := []core.Row{
		row.New(8).Add(header...).WithStyle(&props.Cell{BackgroundColor: colorHeader}),
	}

	for _, r := range t.Rows {
		cols := make([]core.Col, 0, len(sizes))
		for i := range sizes {
			v := ""
			if i < len(r) {
				v = r[i]
			}
			cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
				Size: 8, Align: cellAlign(i), Top: 1, Left: 1, Right: 1,
			})))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func columnSizes(n int) []int {
	if n == 0 || n > gridSize {
		return nil
	}
	sizes := make([]int, n)
	each := gridSize / n
	if n > 1 && each > 2 {
		each = 2
		for each*(n-1) > gridSize-each && each > 1 {
			each--
		}
	}
	for i := range sizes {
		sizes[i] = each
	}
	sizes[0] = gridSize - each*(n-1)
	return sizes
}

func cellAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
