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

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
	infrapdf "github.com/sanmartincomanda/inventario/internal/infrastructure/pdf"
	"github.com/sanmartincomanda/inventario/internal/infrastructure/postgres"
	httpRouter "github.com/sanmartincomanda/inventario/internal/interfaces/http"
	"github.com/sanmartincomanda/inventario/pkg/config"
	"github.com/sanmartincomanda/inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	cpRepo := postgres.NewCounterpartyRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	listener := postgres.NewPendingListener(pool, log)

	recordUC := ledger.NewRecordMovementUseCase(txRunner, branchRepo, catalogRepo, cfg.Ledger.FolioPad)
	approveUC := ledger.NewApproveTransferUseCase(txRunner, branchRepo, cfg.Ledger.FolioPad)
	pendingUC := ledger.NewPendingTransfersUseCase(movRepo, listener)
	queryUC := usecase.NewMovementQueryUseCase(movRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, cpRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	authUC := usecase.NewAuthUseCase(userRepo, branchRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Sucursales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BranchUC:    branchUC,
		CatalogUC:   catalogUC,
		ReportUC:    reportUC,
		QueryUC:     queryUC,
		RecordUC:    recordUC,
		ApproveUC:   approveUC,
		PendingUC:   pendingUC,
		PDFGen:      pdfGenerator,
		Log:         log,
		JWTSecret:   cfg.JWT.Secret,
		TimeoutSecs: cfg.Ledger.StoreTimeoutSecs,
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
