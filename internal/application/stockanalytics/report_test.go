package stockanalytics_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-analytics/internal/application/dto"
	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/internal/domain"
	"github.com/jhoicas/stock-analytics/pkg/locale"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

func newReportUseCase(r stockanalytics.ReportRenderer, s stockanalytics.SpreadsheetExporter) *stockanalytics.ReportUseCase {
	return stockanalytics.NewReportUseCase(
		newUseCase(fixtureStore()),
		r, s,
		locale.New("fr"),
		stockanalytics.ReportConfig{CompanyName: "Atlas Distribution", Currency: "MAD"},
		logger.Nop(),
	)
}

// wait espera el callback de exportación; falla si no llega.
func wait(t *testing.T, ch <-chan stockanalytics.ExportResult) stockanalytics.ExportResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("el callback de exportación no se invocó")
		return stockanalytics.ExportResult{}
	}
}

func TestExportReport_Exito(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("%PDF-1.3")}
	uc := newReportUseCase(renderer, &fakeSpreadsheet{})

	ch := make(chan stockanalytics.ExportResult, 1)
	id, err := uc.ExportReport(context.Background(), dto.FilterRequest{}, func(r stockanalytics.ExportResult) { ch <- r })
	require.NoError(t, err)
	require.NotEmpty(t, id)

	res := wait(t, ch)
	require.NoError(t, res.Err)
	assert.Equal(t, id, res.ID)
	assert.Equal(t, "Rapport_Stock_Avance_20-03-2024.pdf", res.Filename)
	assert.Equal(t, stockanalytics.ContentTypePDF, res.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), res.Content)

	doc := renderer.received()
	assert.Equal(t, "Atlas Distribution", doc.CompanyName)
	assert.Equal(t, "Généré le 20/03/2024", doc.GeneratedOn)
	require.Len(t, doc.Sections, 2, "KPIs + tabla de márgenes")

	kpis := doc.Sections[0].KPIs
	require.NotEmpty(t, kpis)
	assert.Equal(t, "Marge Brute Totale", kpis[0].Label)
	assert.Contains(t, kpis[0].Value, "510")
	assert.True(t, strings.HasSuffix(kpis[0].Value, " MAD"))
	assert.True(t, kpis[0].Highlight)
	assert.Equal(t, "80", kpis[1].Value)
	assert.True(t, kpis[1].Highlight)

	table := doc.Sections[1].Table
	require.NotNil(t, table)
	assert.Equal(t, [][]string{{"Widget", "500", "250", "250"}}, table.Rows)
}

func TestExportReport_FalloDelRenderer(t *testing.T) {
	uc := newReportUseCase(&fakeRenderer{err: errors.New("disco lleno")}, &fakeSpreadsheet{})

	ch := make(chan stockanalytics.ExportResult, 1)
	_, err := uc.ExportReport(context.Background(), dto.FilterRequest{}, func(r stockanalytics.ExportResult) { ch <- r })
	require.NoError(t, err, "el fallo del renderer solo llega por el callback")

	res := wait(t, ch)
	assert.ErrorIs(t, res.Err, domain.ErrExportFailed)
	assert.Empty(t, res.Content)
}

func TestExportReport_PanicoDelRenderer(t *testing.T) {
	uc := newReportUseCase(&fakeRenderer{panic: true}, &fakeSpreadsheet{})

	ch := make(chan stockanalytics.ExportResult, 1)
	_, err := uc.ExportReport(context.Background(), dto.FilterRequest{}, func(r stockanalytics.ExportResult) { ch <- r })
	require.NoError(t, err)

	res := wait(t, ch)
	assert.ErrorIs(t, res.Err, domain.ErrExportFailed)
}

func TestExportReport_FiltroInvalidoNoInvocaCallback(t *testing.T) {
	uc := newReportUseCase(&fakeRenderer{}, &fakeSpreadsheet{})

	called := make(chan struct{}, 1)
	_, err := uc.ExportReport(context.Background(), dto.FilterRequest{Year: 12}, func(stockanalytics.ExportResult) { called <- struct{}{} })
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	select {
	case <-called:
		t.Fatal("callback invocado con filtro inválido")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExportReport_FalloNoAlteraVistas(t *testing.T) {
	store := fixtureStore()
	views := newUseCase(store)
	before, err := views.Summary(context.Background(), dto.FilterRequest{})
	require.NoError(t, err)

	uc := stockanalytics.NewReportUseCase(views, &fakeRenderer{err: errors.New("x")}, &fakeSpreadsheet{},
		locale.New("fr"), stockanalytics.ReportConfig{}, logger.Nop())
	ch := make(chan stockanalytics.ExportResult, 1)
	_, err = uc.ExportReport(context.Background(), dto.FilterRequest{}, func(r stockanalytics.ExportResult) { ch <- r })
	require.NoError(t, err)
	require.Error(t, wait(t, ch).Err)

	after, err := views.Summary(context.Background(), dto.FilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExportSpreadsheet(t *testing.T) {
	sheet := &fakeSpreadsheet{}
	uc := newReportUseCase(&fakeRenderer{}, sheet)

	out, name, err := uc.ExportSpreadsheet(context.Background(), dto.FilterRequest{Product: "p1", Year: 2023})
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), out)
	assert.Equal(t, "Stock_2023.xlsx", name)
	assert.Equal(t, "Widget", sheet.wb.Product)
	assert.Equal(t, 2023, sheet.wb.Year)
	assert.Len(t, sheet.wb.Monthly, 12)
	assert.Len(t, sheet.wb.Heatmap, 24)
	assert.True(t, sheet.wb.Monthly[10].Quantity.Equal(dec("5")))
}

func TestExportSpreadsheet_Fallo(t *testing.T) {
	uc := newReportUseCase(&fakeRenderer{}, &fakeSpreadsheet{err: errors.New("zip")})

	_, _, err := uc.ExportSpreadsheet(context.Background(), dto.FilterRequest{})
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}
