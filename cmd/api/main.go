package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-analytics/internal/application/stockanalytics"
	"github.com/jhoicas/stock-analytics/internal/domain/repository"
	"github.com/jhoicas/stock-analytics/internal/domain/stock"
	"github.com/jhoicas/stock-analytics/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-analytics/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/stock-analytics/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/stock-analytics/internal/interfaces/http"
	"github.com/jhoicas/stock-analytics/pkg/config"
	"github.com/jhoicas/stock-analytics/pkg/locale"
	"github.com/jhoicas/stock-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Data.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Catálogo y libro de facturas: PostgreSQL (solo lectura) o memoria (semilla JSON)
	var (
		productRepo repository.ProductRepository
		invoiceRepo repository.InvoiceRepository
	)
	switch cfg.Data.Source {
	case config.DataSourceMemory:
		store := memory.NewStore(nil, nil)
		if cfg.Data.SeedPath != "" {
			store, err = memory.LoadSeedFile(cfg.Data.SeedPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", cfg.Data.SeedPath).Msg("cargar semilla")
			}
		}
		productRepo, invoiceRepo = store, store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		invoiceRepo = postgres.NewInvoiceRepository(pool)
	}

	format := locale.New(cfg.Report.Locale)
	stockUC := stockanalytics.NewUseCase(productRepo, invoiceRepo, stock.MonthLabels(format.ShortMonths()), log)
	reportUC := stockanalytics.NewReportUseCase(
		stockUC,
		infrapdf.NewMarotoReportGenerator(),
		infraxlsx.NewWorkbookExporter(),
		format,
		stockanalytics.ReportConfig{
			CompanyName: cfg.Report.CompanyName,
			Currency:    cfg.Report.Currency,
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Report.ExportTimeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:       stockUC,
		ReportUC:      reportUC,
		ExportTimeout: cfg.Report.ExportTimeout,
		Logger:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
