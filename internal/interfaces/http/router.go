package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangkita/sparepart-api/internal/application/analytics"
	"github.com/gudangkita/sparepart-api/internal/application/auth"
	"github.com/gudangkita/sparepart-api/internal/application/importer"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/application/report"
)

// RouterDeps dependensi router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	TransactionUC *inventory.TransactionUseCase
	ProjectionUC  *inventory.ProjectionUseCase
	ImporterUC    *importer.UseCase
	MAUC          *analytics.MovingAverageUseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *report.UseCase
	UploadDir     string
	JWTSecret     string
	RequireAuth   bool
}

// Router mendaftarkan seluruh rute API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	ledgerHandler := NewLedgerHandler(deps.TransactionUC)
	inventoryHandler := NewInventoryHandler(deps.ProjectionUC)
	analyticsHandler := NewAnalyticsHandler(deps.MAUC, deps.DashboardUC)
	uploadHandler := NewUploadHandler(deps.ImporterUC, deps.UploadDir)
	reportHandler := NewReportHandler(deps.ReportUC)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/login", authHandler.Login)

	// Dengan REQUIRE_AUTH aktif seluruh rute data butuh Bearer Token;
	// login dan health tetap publik.
	protected := api.Group("/")
	uploads := app.Group("/")
	if deps.RequireAuth {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
		uploads = app.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	protected.Get("/barang-masuk", ledgerHandler.ListMasuk)
	protected.Post("/barang-masuk", ledgerHandler.CreateMasuk)
	protected.Get("/barang-keluar", ledgerHandler.ListKeluar)
	protected.Post("/barang-keluar", ledgerHandler.CreateKeluar)
	protected.Put("/barang-keluar/:id", ledgerHandler.UpdateKeluar)
	protected.Delete("/barang-keluar/:id", ledgerHandler.DeleteKeluar)

	protected.Get("/inventory", inventoryHandler.List)
	protected.Put("/inventory/:id", inventoryHandler.Update)
	protected.Delete("/inventory/:id", inventoryHandler.Delete)
	protected.Get("/list-units", inventoryHandler.ListUnits)

	protected.Get("/analisis-ma", analyticsHandler.AnalisisMA)
	protected.Get("/dashboard/ringkasan", analyticsHandler.Ringkasan)

	protected.Get("/laporan/inventory.pdf", reportHandler.InventoryPDF)
	protected.Get("/laporan/inventory.xlsx", reportHandler.InventoryExcel)

	uploads.Post("/reset-data", inventoryHandler.ResetData)
	uploads.Post("/upload-barang-masuk", uploadHandler.UploadBarangMasuk)
	uploads.Post("/upload-barang-keluar", uploadHandler.UploadBarangKeluar)
	uploads.Post("/upload-inventory", uploadHandler.UploadInventory)
}
