package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-analytics/internal/application/dto"
	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/internal/domain"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

// StockHandler maneja los endpoints de analítica de stock.
type StockHandler struct {
	views         *stockanalytics.UseCase
	reports       *stockanalytics.ReportUseCase
	exportTimeout time.Duration
	log           *logger.Logger
}

// NewStockHandler construye el handler. exportTimeout acota la espera del PDF.
func NewStockHandler(views *stockanalytics.UseCase, reports *stockanalytics.ReportUseCase, exportTimeout time.Duration, log *logger.Logger) *StockHandler {
	return &StockHandler{views: views, reports: reports, exportTimeout: exportTimeout, log: log}
}

// Summary GET /api/stock/summary?product=
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	out, err := h.views.Summary(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Evolution GET /api/stock/evolution?product=
// Sin producto concreto responde 200 con selection_required=true y sin puntos.
func (h *StockHandler) Evolution(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	out, err := h.views.StockEvolution(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Distribution GET /api/stock/distribution?mode=sales|stock
func (h *StockHandler) Distribution(c *fiber.Ctx) error {
	var req dto.DistributionRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	out, err := h.views.Distribution(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Margins GET /api/stock/margins
func (h *StockHandler) Margins(c *fiber.Ctx) error {
	out, err := h.views.Margins(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Monthly GET /api/stock/monthly?year=&product=
func (h *StockHandler) Monthly(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	out, err := h.views.MonthlyTrend(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Heatmap GET /api/stock/heatmap?year=
func (h *StockHandler) Heatmap(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	out, err := h.views.Heatmap(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Dashboard GET /api/stock/dashboard?product=&year=&period=&search=
func (h *StockHandler) Dashboard(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	out, err := h.views.Dashboard(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Years GET /api/stock/years
func (h *StockHandler) Years(c *fiber.Ctx) error {
	out, err := h.views.AvailableYears(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// ReportPDF GET /api/stock/report.pdf?product=
// Lanza la exportación y espera el callback hasta exportTimeout.
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}

	done := make(chan stockanalytics.ExportResult, 1)
	id, err := h.reports.ExportReport(c.UserContext(), req, func(r stockanalytics.ExportResult) { done <- r })
	if err != nil {
		return h.fail(c, err)
	}

	timer := time.NewTimer(h.exportTimeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.Err != nil {
			return h.fail(c, res.Err)
		}
		return sendFile(c, res.ContentType, res.Filename, res.Content)
	case <-timer.C:
		h.log.Warn().Str("export_id", id).Dur("timeout", h.exportTimeout).Msg("exportación del reporte excedió el tiempo")
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "la generación del reporte tardó demasiado; intenta de nuevo",
		})
	}
}

// ReportXLSX GET /api/stock/report.xlsx?product=&year=
func (h *StockHandler) ReportXLSX(c *fiber.Ctx) error {
	req, ok := h.parseFilter(c)
	if !ok {
		return nil
	}
	content, filename, err := h.reports.ExportSpreadsheet(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return sendFile(c, stockanalytics.ContentTypeXLSX, filename, content)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// parseFilter lee los query params; si fallan ya escribió la respuesta 400.
func (h *StockHandler) parseFilter(c *fiber.Ctx) (dto.FilterRequest, bool) {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		_ = invalidParams(c)
		return req, false
	}
	return req, true
}

// fail traduce errores de dominio a respuestas HTTP.
func (h *StockHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrExportFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "EXPORT_FAILED", Message: "no se pudo generar el archivo",
		})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	}
}

func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}

func sendFile(c *fiber.Ctx, contentType, filename string, content []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
