package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
)

// CatalogHandler maneja el catálogo de SKUs y las contrapartes (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Upsert godoc
// @Summary      Insertar o actualizar SKUs del catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertCatalogRequest  true  "SKUs a insertar o actualizar"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/skus [post]
func (h *CatalogHandler) Upsert(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpsertCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	items := make([]usecase.SKUInput, 0, len(in.SKUs))
	for _, s := range in.SKUs {
		items = append(items, usecase.SKUInput{Code: s.SKU, Name: s.Name, Unit: s.Unit, Active: s.Active})
	}
	if err := h.uc.Upsert(c.Context(), branchID, items); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "catálogo actualizado"})
}

// List godoc
// @Summary      Listar el catálogo de la sucursal
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        include_inactive  query  bool  false  "incluir SKUs desactivados"
// @Success      200  {array}  dto.SKUResponse
// @Router       /api/catalog/skus [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	skus, err := h.uc.List(c.Context(), branchID, c.QueryBool("include_inactive"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.SKUResponse, 0, len(skus))
	for _, s := range skus {
		out = append(out, dto.SKUResponse{SKU: s.Code, Name: s.Name, Unit: s.Unit, Active: s.Active})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar un SKU del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código del SKU"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/skus/{code} [delete]
func (h *CatalogHandler) Deactivate(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Deactivate(c.Context(), branchID, c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "SKU desactivado"})
}

// AddCounterparty godoc
// @Summary      Registrar un proveedor o destino
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCounterpartyRequest  true  "kind: proveedor | destino"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/counterparties [post]
func (h *CatalogHandler) AddCounterparty(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AddCounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.AddCounterparty(c.Context(), branchID, in.Kind, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CounterpartyResponse{ID: id, Kind: in.Kind, Name: in.Name})
}

// ListCounterparties godoc
// @Summary      Listar proveedores o destinos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        kind  query  string  true  "proveedor | destino"
// @Success      200  {array}  dto.CounterpartyResponse
// @Router       /api/counterparties [get]
func (h *CatalogHandler) ListCounterparties(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListCounterparties(c.Context(), branchID, c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.CounterpartyResponse, 0, len(list))
	for _, cp := range list {
		out = append(out, dto.CounterpartyResponse{ID: cp.ID, Kind: cp.Kind, Name: cp.Name})
	}
	return c.JSON(out)
}
