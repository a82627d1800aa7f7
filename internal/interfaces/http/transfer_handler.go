package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/pkg/logger"
)

// TransferHandler maneja la aprobación y consulta de traspasos (protegido).
type TransferHandler struct {
	approveUC *ledger.ApproveTransferUseCase
	pendingUC *ledger.PendingTransfersUseCase
	log       *logger.Logger
	timeout   time.Duration
}

// NewTransferHandler construye el handler.
func NewTransferHandler(
	approveUC *ledger.ApproveTransferUseCase,
	pendingUC *ledger.PendingTransfersUseCase,
	log *logger.Logger,
	timeoutSecs int,
) *TransferHandler {
	return &TransferHandler{
		approveUC: approveUC,
		pendingUC: pendingUC,
		log:       log,
		timeout:   time.Duration(timeoutSecs) * time.Second,
	}
}

// Approve godoc
// @Summary      Aprobar un traspaso pendiente
// @Description  Marca aprobados ambos lados del traspaso y genera la entrada
//
//	en la sucursal receptora con las líneas copiadas.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la salida de traspaso (espejo en la sucursal receptora)"
// @Param        body  body  dto.ApproveTransferRequest  true  "quién recibe"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/approve [post]
func (h *TransferHandler) Approve(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApproveTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()
	if err := h.approveUC.Approve(ctx, branchID, c.Params("id"), in.ReceivedBy); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "traspaso aprobado"})
}

// ListPending godoc
// @Summary      Traspasos pendientes de aprobar en la sucursal
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/transfers/pending [get]
func (h *TransferHandler) ListPending(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()
	pending, err := h.pendingUC.List(ctx, branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovementResponses(pending))
}

// StreamPending godoc
// @Summary      Stream SSE de traspasos pendientes
// @Description  Emite el conjunto pendiente completo al conectar y en cada
//
//	cambio. Formato: eventos "data: [...]" con el mismo cuerpo
//	que GET /api/transfers/pending.
//
// @Tags         transfers
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Router       /api/transfers/pending/stream [get]
func (h *TransferHandler) StreamPending(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	// La suscripción vive más que este handler: el contexto propio se
	// cancela cuando el cliente corta el stream.
	ctx, cancel := context.WithCancel(context.Background())
	sub, err := h.pendingUC.Subscribe(ctx, branchID)
	if err != nil {
		cancel()
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer sub.Close()
		for pending := range sub.C {
			payload, err := json.Marshal(dto.ToMovementResponses(pending))
			if err != nil {
				h.log.Error().Err(err).Msg("serializar traspasos pendientes")
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return // cliente desconectado
			}
		}
	}))
	return nil
}
