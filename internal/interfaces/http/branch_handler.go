package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
)

// BranchHandler maneja el alta y la consulta de sucursales.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una sucursal
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "nombre de la sucursal"
// @Success      201   {object}  dto.BranchResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	branch, err := h.uc.Create(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BranchResponse{ID: branch.ID, Name: branch.Name})
}

// List godoc
// @Summary      Listar sucursales
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BranchResponse
// @Router       /api/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.BranchResponse{ID: b.ID, Name: b.Name})
	}
	return c.JSON(out)
}
