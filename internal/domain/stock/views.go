package stock

import "github.com/shopspring/decimal"

// StockEvolutionPoint un mes de la ventana de evolución de stock.
type StockEvolutionPoint struct {
	Month        string
	InitialStock decimal.Decimal // foto actual del stock, igual en todos los meses
	Sold         decimal.Decimal
	Remaining    decimal.Decimal // max(0, InitialStock - Sold)
}

// DistributionSlice una porción de la distribución proporcional.
type DistributionSlice struct {
	Label      string
	Value      decimal.Decimal
	Color      string
	Percentage decimal.Decimal // Value / Σ Value * 100; 0 si el total es 0
}

// MarginRecord margen bruto histórico de un producto.
type MarginRecord struct {
	ProductName   string
	Margin        decimal.Decimal // SalesValue - PurchaseValue
	SalesValue    decimal.Decimal
	PurchaseValue decimal.Decimal // cantidad vendida * precio de compra
	Unit          string
}

// MonthlySalesPoint ventas de un mes del año analizado.
type MonthlySalesPoint struct {
	Month       string
	Quantity    decimal.Decimal
	Value       decimal.Decimal
	OrdersCount int // facturas del mes, coincidan o no con el filtro de producto
}

// HeatmapCell celda producto×mes del heatmap.
type HeatmapCell struct {
	Month       string
	ProductName string
	Quantity    decimal.Decimal
	Value       decimal.Decimal
	Intensity   decimal.Decimal // Quantity / máximo global del grid; 0 si el máximo es 0
}

// SummaryStats KPIs globales.
type SummaryStats struct {
	TotalStockInitial   decimal.Decimal
	TotalPurchaseValue  decimal.Decimal
	TotalSalesValue     decimal.Decimal
	TotalQuantitySold   decimal.Decimal
	TotalRemainingStock decimal.Decimal // Σ (stock - vendido), sin acotar
	DormantProducts     int
	GrossMargin         decimal.Decimal // TotalSalesValue - TotalPurchaseValue
}
