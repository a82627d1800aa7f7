package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sanmartincomanda/inventario/internal/application/dto"
	"github.com/sanmartincomanda/inventario/pkg/jwt"
)

// Locals keys para UserID y BranchID en Fiber.
const (
	LocalUserID   = "user_id"
	LocalBranchID = "branch_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y BranchID a c.Locals.
// Toda ruta protegida queda limitada a la sucursal del token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, branchID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalBranchID, branchID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetBranchID devuelve el BranchID del contexto (después del middleware de auth).
func GetBranchID(c *fiber.Ctx) string {
	v := c.Locals(LocalBranchID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
