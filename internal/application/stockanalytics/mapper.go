package stockanalytics

import (
	"github.com/jhoicas/stock-analytics/internal/application/dto"
	"github.com/jhoicas/stock-analytics/internal/domain/entity"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
)

func toSummaryDTO(product string, s stock.SummaryStats) dto.SummaryDTO {
	return dto.SummaryDTO{
		Product:             product,
		TotalStockInitial:   s.TotalStockInitial,
		TotalPurchaseValue:  s.TotalPurchaseValue,
		TotalSalesValue:     s.TotalSalesValue,
		TotalQuantitySold:   s.TotalQuantitySold,
		TotalRemainingStock: s.TotalRemainingStock,
		DormantProducts:     s.DormantProducts,
		GrossMargin:         s.GrossMargin,
	}
}

func toEvolutionPointsDTO(points []stock.StockEvolutionPoint) []dto.StockEvolutionPointDTO {
	out := make([]dto.StockEvolutionPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.StockEvolutionPointDTO{
			Month:        p.Month,
			InitialStock: p.InitialStock,
			Sold:         p.Sold,
			Remaining:    p.Remaining,
		})
	}
	return out
}

func toDistributionDTO(mode stock.DistributionMode, slices []stock.DistributionSlice) dto.DistributionDTO {
	out := dto.DistributionDTO{
		Mode:   string(mode),
		Total:  stock.SliceTotal(slices),
		Slices: make([]dto.DistributionSliceDTO, 0, len(slices)),
	}
	for _, s := range slices {
		out.Slices = append(out.Slices, dto.DistributionSliceDTO{
			Label:      s.Label,
			Value:      s.Value,
			Color:      s.Color,
			Percentage: s.Percentage,
		})
	}
	return out
}

func toMarginsDTO(records []stock.MarginRecord) dto.MarginsDTO {
	out := dto.MarginsDTO{Items: make([]dto.MarginRecordDTO, 0, len(records))}
	for _, r := range records {
		out.Items = append(out.Items, dto.MarginRecordDTO{
			ProductName:   r.ProductName,
			Margin:        r.Margin,
			SalesValue:    r.SalesValue,
			PurchaseValue: r.PurchaseValue,
			Unit:          r.Unit,
		})
	}
	return out
}

func toMonthlyTrendDTO(f stock.Filter, points []stock.MonthlySalesPoint) dto.MonthlyTrendDTO {
	out := dto.MonthlyTrendDTO{
		Year:    f.Year,
		Product: f.Product,
		Points:  make([]dto.MonthlySalesPointDTO, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, dto.MonthlySalesPointDTO{
			Month:       p.Month,
			Quantity:    p.Quantity,
			Value:       p.Value,
			OrdersCount: p.OrdersCount,
		})
	}
	return out
}

func toHeatmapDTO(year int, products []entity.Product, labels stock.MonthLabels, cells []stock.HeatmapCell) dto.HeatmapDTO {
	out := dto.HeatmapDTO{
		Year:     year,
		Products: make([]string, 0, len(products)),
		Months:   labels[:],
		Cells:    make([]dto.HeatmapCellDTO, 0, len(cells)),
	}
	for _, p := range products {
		out.Products = append(out.Products, p.Name)
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, dto.HeatmapCellDTO{
			Month:       c.Month,
			ProductName: c.ProductName,
			Quantity:    c.Quantity,
			Value:       c.Value,
			Intensity:   c.Intensity,
		})
	}
	return out
}
