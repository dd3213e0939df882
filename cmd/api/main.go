package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gudangkita/sparepart-api/internal/application/analytics"
	"github.com/gudangkita/sparepart-api/internal/application/auth"
	"github.com/gudangkita/sparepart-api/internal/application/importer"
	"github.com/gudangkita/sparepart-api/internal/application/inventory"
	"github.com/gudangkita/sparepart-api/internal/application/report"
	"github.com/gudangkita/sparepart-api/internal/infrastructure/excel"
	infrapdf "github.com/gudangkita/sparepart-api/internal/infrastructure/pdf"
	"github.com/gudangkita/sparepart-api/internal/infrastructure/postgres"
	httpRouter "github.com/gudangkita/sparepart-api/internal/interfaces/http"
	"github.com/gudangkita/sparepart-api/pkg/config"
	"github.com/gudangkita/sparepart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrasi skema")
	}
	if err := postgres.SeedAdmin(ctx, pool, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed akun admin")
	}

	userRepo := postgres.NewUserRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	transactionUC := inventory.NewTransactionUseCase(txRunner, ledgerRepo)
	projectionUC := inventory.NewProjectionUseCase(txRunner, invRepo)
	importerUC := importer.NewUseCase(excel.NewReader(), ledgerRepo, invRepo)
	maUC := analytics.NewMovingAverageUseCase(analyticsRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	reportUC := report.NewUseCase(invRepo, infrapdf.NewMarotoReportGenerator(), excel.NewWriter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // upload xlsx
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TransactionUC: transactionUC,
		ProjectionUC:  projectionUC,
		ImporterUC:    importerUC,
		MAUC:          maUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		UploadDir:     cfg.Upload.Dir,
		JWTSecret:     cfg.JWT.Secret,
		RequireAuth:   cfg.Auth.RequireAuth,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}
