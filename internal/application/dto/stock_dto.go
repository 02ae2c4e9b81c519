package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// FilterRequest filtros comunes de las vistas de stock.
// Period y Search se aceptan por compatibilidad; ninguna vista los usa.
type FilterRequest struct {
	Product string `query:"product" validate:"max=100"`                            // ID de producto o "all" (default)
	Year    int    `query:"year" validate:"omitempty,min=1900,max=9999"`           // default: año actual
	Period  string `query:"period" validate:"omitempty,oneof=month quarter year"` // reservado
	Search  string `query:"search" validate:"max=200"`                             // reservado
}

// DistributionRequest parámetros para GET /api/stock/distribution.
type DistributionRequest struct {
	Mode string `query:"mode" validate:"required,oneof=sales stock"`
}

// ── Vistas ────────────────────────────────────────────────────────────────────

// StockEvolutionPointDTO un mes de la evolución de stock.
type StockEvolutionPointDTO struct {
	Month        string          `json:"month"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	Sold         decimal.Decimal `json:"sold"`
	Remaining    decimal.Decimal `json:"remaining"` // acotado a 0
}

// StockEvolutionDTO respuesta de GET /api/stock/evolution.
// SelectionRequired es true cuando no se eligió un producto concreto (Points vacío).
type StockEvolutionDTO struct {
	ProductID         string                   `json:"product_id"`
	ProductName       string                   `json:"product_name,omitempty"`
	Unit              string                   `json:"unit,omitempty"`
	SelectionRequired bool                     `json:"selection_required"`
	Points            []StockEvolutionPointDTO `json:"points"`
}

// DistributionSliceDTO porción de la distribución.
type DistributionSliceDTO struct {
	Label      string          `json:"label"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DistributionDTO respuesta de GET /api/stock/distribution.
type DistributionDTO struct {
	Mode   string                 `json:"mode"`  // sales | stock
	Total  decimal.Decimal        `json:"total"` // suma de las porciones (valor central del donut)
	Slices []DistributionSliceDTO `json:"slices"`
}

// MarginRecordDTO margen histórico de un producto.
type MarginRecordDTO struct {
	ProductName   string          `json:"product_name"`
	Margin        decimal.Decimal `json:"margin"`
	SalesValue    decimal.Decimal `json:"sales_value"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	Unit          string          `json:"unit"`
}

// MarginsDTO respuesta de GET /api/stock/margins.
type MarginsDTO struct {
	Items []MarginRecordDTO `json:"items"`
}

// MonthlySalesPointDTO ventas de un mes.
type MonthlySalesPointDTO struct {
	Month       string          `json:"month"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	OrdersCount int             `json:"orders_count"` // facturas del mes, coincidan o no con el producto
}

// MonthlyTrendDTO respuesta de GET /api/stock/monthly.
type MonthlyTrendDTO struct {
	Year    int                    `json:"year"`
	Product string                 `json:"product"`
	Points  []MonthlySalesPointDTO `json:"points"`
}

// HeatmapCellDTO celda producto×mes.
type HeatmapCellDTO struct {
	Month       string          `json:"month"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	Intensity   decimal.Decimal `json:"intensity"` // 0..1, normalizada con el máximo global
}

// HeatmapDTO respuesta de GET /api/stock/heatmap.
type HeatmapDTO struct {
	Year     int              `json:"year"`
	Products []string         `json:"products"` // filas, orden de catálogo
	Months   []string         `json:"months"`   // columnas, orden calendario
	Cells    []HeatmapCellDTO `json:"cells"`
}

// SummaryDTO respuesta de GET /api/stock/summary.
type SummaryDTO struct {
	Product             string          `json:"product"`
	TotalStockInitial   decimal.Decimal `json:"total_stock_initial"`
	TotalPurchaseValue  decimal.Decimal `json:"total_purchase_value"`
	TotalSalesValue     decimal.Decimal `json:"total_sales_value"`
	TotalQuantitySold   decimal.Decimal `json:"total_quantity_sold"`
	TotalRemainingStock decimal.Decimal `json:"total_remaining_stock"` // sin acotar, puede ser negativo
	DormantProducts     int             `json:"dormant_products"`
	GrossMargin         decimal.Decimal `json:"gross_margin"`
}

// YearsDTO respuesta de GET /api/stock/years.
type YearsDTO struct {
	Years []int `json:"years"` // descendente
}

// DashboardDTO respuesta de GET /api/stock/dashboard: todas las vistas con un mismo filtro.
type DashboardDTO struct {
	Product           string            `json:"product"`
	Year              int               `json:"year"`
	Period            string            `json:"period"`
	AvailableYears    []int             `json:"available_years"`
	Summary           SummaryDTO        `json:"summary"`
	SalesDistribution DistributionDTO   `json:"sales_distribution"`
	StockDistribution DistributionDTO   `json:"stock_distribution"`
	Margins           MarginsDTO        `json:"margins"`
	Monthly           MonthlyTrendDTO   `json:"monthly"`
	Heatmap           HeatmapDTO        `json:"heatmap"`
	Evolution         StockEvolutionDTO `json:"evolution"`
}
