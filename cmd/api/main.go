package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/gst-ledger/docs"
	"github.com/jhoicas/gst-ledger/internal/application/ledger"
	"github.com/jhoicas/gst-ledger/internal/application/reports"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/csvstore"
	infrapdf "github.com/jhoicas/gst-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/gst-ledger/internal/interfaces/http"
	"github.com/jhoicas/gst-ledger/pkg/config"
	"github.com/jhoicas/gst-ledger/pkg/logger"
)

// @title        GST Ledger API
// @version      1.0
// @description  Libro de asientos y reportes de impuesto (libro de ventas, declaración resumen).
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén de asientos: archivo CSV si está configurado, si no PostgreSQL.
	var entryRepo repository.LedgerEntryRepository
	if cfg.Store.LedgerCSVPath != "" {
		entryRepo = csvstore.NewStore(cfg.Store.LedgerCSVPath, csvstore.WithCharset(cfg.Store.LedgerCSVCharset))
		log.Info().Str("path", cfg.Store.LedgerCSVPath).Msg("libro de asientos en archivo CSV")
	} else {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		entryRepo = postgres.NewLedgerEntryRepository(pool)
	}

	taxCfg := cfg.GST.TaxConfig()
	source := reports.NewRepositorySource(entryRepo, log.Component("entry_source"))
	reportsUC := reports.NewUseCase(source, taxCfg, log.Component("reports"))
	ledgerUC := ledger.NewUseCase(entryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GST Ledger API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportsUC: reportsUC,
		LedgerUC:  ledgerUC,
		PDF:       infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		XML:       xmlexport.NewBuilder(2),
		JWTSecret: cfg.JWT.Secret,
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
