package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC       *stockanalytics.UseCase
	ReportUC      *stockanalytics.ReportUseCase
	ExportTimeout time.Duration
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Analítica de stock (solo lectura)
	stock := api.Group("/stock")
	h := NewStockHandler(deps.StockUC, deps.ReportUC, deps.ExportTimeout, deps.Logger)
	stock.Get("/summary", h.Summary)
	stock.Get("/evolution", h.Evolution)
	stock.Get("/distribution", h.Distribution)
	stock.Get("/margins", h.Margins)
	stock.Get("/monthly", h.Monthly)
	stock.Get("/heatmap", h.Heatmap)
	stock.Get("/dashboard", h.Dashboard)
	stock.Get("/years", h.Years)

	// Exportaciones
	stock.Get("/report.pdf", h.ReportPDF)
	stock.Get("/report.xlsx", h.ReportXLSX)
}
