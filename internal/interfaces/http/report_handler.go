package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
)

// ReportHandler maneja las consultas consolidadas del libro (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SKUDifference godoc
// @Summary      Diferencia entrada-salida por SKU
// @Description  Consolida por SKU las libras de entrada y de salida en el
//
//	rango [from, to] y su diferencia. Sin fechas, el rango es hoy.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.SKUDeltaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sku-difference [get]
func (h *ReportHandler) SKUDifference(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	deltas, err := h.uc.SKUDifference(c.Context(), branchID, c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.SKUDeltaResponse, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, dto.SKUDeltaResponse{
			SKU:        d.SKU,
			Entradas:   d.Entradas,
			Salidas:    d.Salidas,
			Diferencia: d.Diferencia,
		})
	}
	return c.JSON(out)
}
