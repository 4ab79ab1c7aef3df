package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-ledger/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportsUC reportService
	LedgerUC  ledgerService
	PDF       documentGenerator
	XML       documentGenerator
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes (cualquier rol autenticado)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC, deps.PDF, deps.XML)
	reports.Get("/sales-register", reportHandler.SalesRegister)
	reports.Get("/summary-return", reportHandler.SummaryReturn)
	reports.Get("/profit-and-loss", reportHandler.ProfitAndLoss)

	// Libro de asientos (escritura solo admin/contador)
	ledger := api.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/", ledgerHandler.List)
	ledger.Post("/", RequireRole(jwt.RoleAdmin, jwt.RoleAccountant), ledgerHandler.Create)
}
