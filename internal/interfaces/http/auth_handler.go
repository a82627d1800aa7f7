package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/internal/application/usecase"
)

// AuthHandler maneja el login (público).
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, user, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, BranchID: user.BranchID})
}
