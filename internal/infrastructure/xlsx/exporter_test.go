package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
	"github.com/jhoicas/stock-analytics/internal/infrastructure/xlsx"
)

func TestExportStockWorkbook_Hojas(t *testing.T) {
	d := decimal.RequireFromString
	var heat []stock.HeatmapCell
	for _, name := range []string{"Widget", "Gadget"} {
		for m := 0; m < 12; m++ {
			heat = append(heat, stock.HeatmapCell{
				Month:       stock.DefaultMonthLabels[m],
				ProductName: name,
				Quantity:    decimal.NewFromInt(int64(m)),
			})
		}
	}
	wb := stockanalytics.Workbook{
		Year:        2024,
		Product:     "Tous les produits",
		GeneratedAt: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
		Summary:     stock.SummaryStats{GrossMargin: d("200"), DormantProducts: 1},
		Monthly: []stock.MonthlySalesPoint{
			{Month: "janv.", Quantity: d("3"), Value: d("30.5"), OrdersCount: 2},
		},
		Heatmap: heat,
		Margins: []stock.MarginRecord{
			{ProductName: "Widget", SalesValue: d("400"), PurchaseValue: d("200"), Margin: d("200"), Unit: "kg"},
		},
	}

	out, err := xlsx.NewWorkbookExporter().ExportStockWorkbook(context.Background(), wb)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetSummary, xlsx.SheetMonthly, xlsx.SheetHeatmap, xlsx.SheetMargins}, f.GetSheetList())

	monthly, err := f.GetRows(xlsx.SheetMonthly)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, []string{"janv.", "3", "30.5", "2"}, monthly[1])

	heatRows, err := f.GetRows(xlsx.SheetHeatmap)
	require.NoError(t, err)
	require.Len(t, heatRows, 3, "cabecera + una fila por producto")
	assert.Equal(t, "Gadget", heatRows[2][0])
	assert.Equal(t, "déc.", heatRows[0][12])

	margins, err := f.GetRows(xlsx.SheetMargins)
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "400", "200", "200", "kg"}, margins[1])

	summary, err := f.GetRows(xlsx.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, "Tous les produits", summary[1][1])
}

func TestExportStockWorkbook_Vacio(t *testing.T) {
	out, err := xlsx.NewWorkbookExporter().ExportStockWorkbook(context.Background(), stockanalytics.Workbook{Year: 2024})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
