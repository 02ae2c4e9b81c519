// Package xlsx exporta las vistas de stock a un libro Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
)

// Nombres de las hojas del libro exportado.
const (
	SheetSummary = "Résumé"
	SheetMonthly = "Mensuel"
	SheetHeatmap = "Heatmap"
	SheetMargins = "Marges"
)

const defaultSheet = "Sheet1"

// WorkbookExporter implementa stockanalytics.SpreadsheetExporter.
type WorkbookExporter struct{}

// NewWorkbookExporter construye el exportador.
func NewWorkbookExporter() *WorkbookExporter { return &WorkbookExporter{} }

// ExportStockWorkbook escribe una hoja por vista y devuelve el .xlsx en bytes.
func (e *WorkbookExporter) ExportStockWorkbook(_ context.Context, wb stockanalytics.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja %s: %w", SheetSummary, err)
	}
	for _, name := range []string{SheetMonthly, SheetHeatmap, SheetMargins} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: hoja %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	w := &sheetWriter{f: f, bold: bold}

	w.summary(wb)
	w.monthly(wb)
	w.heatmap(wb)
	w.margins(wb)
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no comprobar cada celda.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) row(sheet string, r int, values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = fmt.Errorf("xlsx: celda: %w", err)
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("xlsx: fila %s!%d: %w", sheet, r, err)
	}
}

func (w *sheetWriter) header(sheet string, r int, values ...interface{}) {
	w.row(sheet, r, values...)
	if w.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, r)
	last, _ := excelize.CoordinatesToCellName(len(values), r)
	if err := w.f.SetCellStyle(sheet, first, last, w.bold); err != nil {
		w.err = fmt.Errorf("xlsx: estilo %s!%d: %w", sheet, r, err)
	}
}

func (w *sheetWriter) summary(wb stockanalytics.Workbook) {
	s := wb.Summary
	w.header(SheetSummary, 1, "Indicateur", "Valeur")
	rows := [][]interface{}{
		{"Produit", wb.Product},
		{"Année", wb.Year},
		{"Généré le", wb.GeneratedAt.Format("02/01/2006 15:04")},
		{"Stock initial total", num(s.TotalStockInitial)},
		{"Valeur d'achat", num(s.TotalPurchaseValue)},
		{"Valeur des ventes", num(s.TotalSalesValue)},
		{"Quantité vendue", num(s.TotalQuantitySold)},
		{"Stock restant", num(s.TotalRemainingStock)},
		{"Produits dormants", s.DormantProducts},
		{"Marge brute", num(s.GrossMargin)},
	}
	for i, r := range rows {
		w.row(SheetSummary, i+2, r...)
	}
}

func (w *sheetWriter) monthly(wb stockanalytics.Workbook) {
	w.header(SheetMonthly, 1, "Mois", "Quantité", "Valeur", "Commandes")
	for i, p := range wb.Monthly {
		w.row(SheetMonthly, i+2, p.Month, num(p.Quantity), num(p.Value), p.OrdersCount)
	}
}

// heatmap pivota las celdas (producto mayor, mes menor) a una fila por producto.
func (w *sheetWriter) heatmap(wb stockanalytics.Workbook) {
	const months = 12
	header := []interface{}{"Produit"}
	for i := 0; i < months && i < len(wb.Heatmap); i++ {
		header = append(header, wb.Heatmap[i].Month)
	}
	w.header(SheetHeatmap, 1, header...)

	for start, r := 0, 2; start+months <= len(wb.Heatmap); start, r = start+months, r+1 {
		cells := wb.Heatmap[start : start+months]
		values := []interface{}{cells[0].ProductName}
		for _, c := range cells {
			values = append(values, num(c.Quantity))
		}
		w.row(SheetHeatmap, r, values...)
	}
}

func (w *sheetWriter) margins(wb stockanalytics.Workbook) {
	w.header(SheetMargins, 1, "Produit", "Ventes", "Achat", "Marge", "Unité")
	for i, m := range wb.Margins {
		w.row(SheetMargins, i+2, m.ProductName, num(m.SalesValue), num(m.PurchaseValue), num(m.Margin), m.Unit)
	}
}

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
