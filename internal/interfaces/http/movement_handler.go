package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// MovementPDFGenerator genera el comprobante imprimible de un movimiento.
type MovementPDFGenerator interface {
	GenerateMovementPDF(ctx context.Context, mov *entity.Movement, branch *entity.Branch) ([]byte, error)
}

// MovementHandler maneja el registro y la consulta de entradas y salidas (protegido).
type MovementHandler struct {
	recordUC *ledger.RecordMovementUseCase
	queryUC  *usecase.MovementQueryUseCase
	branchUC *usecase.BranchUseCase
	pdfGen   MovementPDFGenerator
	timeout  time.Duration
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	recordUC *ledger.RecordMovementUseCase,
	queryUC *usecase.MovementQueryUseCase,
	branchUC *usecase.BranchUseCase,
	pdfGen MovementPDFGenerator,
	timeoutSecs int,
) *MovementHandler {
	return &MovementHandler{
		recordUC: recordUC,
		queryUC:  queryUC,
		branchUC: branchUC,
		pdfGen:   pdfGen,
		timeout:  time.Duration(timeoutSecs) * time.Second,
	}
}

// withTimeout acota la operación contra la BD. Si el deadline vence, la
// respuesta es 504 pero la transacción pudo haberse aplicado igual: el
// timeout corta la espera, no el trabajo del servidor de BD.
func (h *MovementHandler) withTimeout(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), h.timeout)
}

// RecordEntry godoc
// @Summary      Registrar una entrada de inventario
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "proveedor, fecha y líneas (sku + pesos)"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *MovementHandler) RecordEntry(c *fiber.Ctx) error {
	return h.record(c, h.recordUC.RecordEntry)
}

// RecordExit godoc
// @Summary      Registrar una salida de inventario
// @Description  Si el destino es otra sucursal, la salida queda pendiente de
//
//	aprobación y la sucursal destino recibe el traspaso.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "destino, fecha y líneas (sku + pesos)"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *MovementHandler) RecordExit(c *fiber.Ctx) error {
	return h.record(c, h.recordUC.RecordExit)
}

func (h *MovementHandler) record(c *fiber.Ctx, fn func(context.Context, string, ledger.MovementDraft) (*ledger.RecordResult, error)) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	draft := ledger.MovementDraft{
		Date:         in.Date,
		Counterparty: in.Counterparty,
		Actor:        in.Actor,
		Observation:  in.Observation,
	}
	for _, l := range in.Lines {
		draft.Lines = append(draft.Lines, ledger.LineDraft{SKU: l.SKU, Weights: l.Weights, Notes: l.Notes})
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()
	res, err := fn(ctx, branchID, draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{
		ID:       res.ID,
		Folio:    res.Folio,
		Status:   res.Status,
		Warnings: res.Warnings,
	})
}

// List godoc
// @Summary      Listar movimientos de la sucursal
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  true   "entrada | salida"
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Param        limit   query  int     false  "máximo de filas (default 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()

	ctx, cancel := h.withTimeout(c)
	defer cancel()
	list, err := h.queryUC.List(ctx, branchID, usecase.ListFilter{
		Type:   c.Query("type"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovementResponses(list))
}

// GetByID godoc
// @Summary      Detalle de un movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	ctx, cancel := h.withTimeout(c)
	defer cancel()
	mov, err := h.queryUC.Get(ctx, branchID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovementResponse(mov))
}

// GetPDF godoc
// @Summary      Comprobante PDF de un movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/pdf [get]
func (h *MovementHandler) GetPDF(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	mov, err := h.queryUC.Get(ctx, branchID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	branch, err := h.branchUC.Get(ctx, branchID)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateMovementPDF(ctx, mov, branch)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+mov.Folio+`.pdf"`)
	return c.Send(pdfBytes)
}
