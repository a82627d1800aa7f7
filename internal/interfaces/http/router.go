package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
	"github.com/sanmartincomanda/inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *usecase.AuthUseCase
	BranchUC    *usecase.BranchUseCase
	CatalogUC   *usecase.CatalogUseCase
	ReportUC    *usecase.ReportUseCase
	QueryUC     *usecase.MovementQueryUseCase
	RecordUC    *ledger.RecordMovementUseCase
	ApproveUC   *ledger.ApproveTransferUseCase
	PendingUC   *ledger.PendingTransfersUseCase
	PDFGen      MovementPDFGenerator
	Log         *logger.Logger
	JWTSecret   string
	TimeoutSecs int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con branch_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sucursales
	branchHandler := NewBranchHandler(deps.BranchUC)
	protected.Post("/branches", branchHandler.Create)
	protected.Get("/branches", branchHandler.List)

	// Catálogo y contrapartes
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Post("/catalog/skus", catalogHandler.Upsert)
	protected.Get("/catalog/skus", catalogHandler.List)
	protected.Delete("/catalog/skus/:code", catalogHandler.Deactivate)
	protected.Post("/counterparties", catalogHandler.AddCounterparty)
	protected.Get("/counterparties", catalogHandler.ListCounterparties)

	// Decodificación de etiquetas
	barcodeHandler := NewBarcodeHandler()
	protected.Post("/barcodes/decode", barcodeHandler.Decode)

	// Libro de movimientos
	movementHandler := NewMovementHandler(deps.RecordUC, deps.QueryUC, deps.BranchUC, deps.PDFGen, deps.TimeoutSecs)
	protected.Post("/entries", movementHandler.RecordEntry)
	protected.Post("/exits", movementHandler.RecordExit)
	protected.Get("/movements", movementHandler.List)
	protected.Get("/movements/:id", movementHandler.GetByID)
	protected.Get("/movements/:id/pdf", movementHandler.GetPDF)

	// Traspasos
	transferHandler := NewTransferHandler(deps.ApproveUC, deps.PendingUC, deps.Log, deps.TimeoutSecs)
	protected.Get("/transfers/pending", transferHandler.ListPending)
	protected.Get("/transfers/pending/stream", transferHandler.StreamPending)
	protected.Post("/transfers/:id/approve", transferHandler.Approve)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/sku-difference", reportHandler.SKUDifference)
}
