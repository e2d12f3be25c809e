package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Local key para el usuario del token en Fiber.
const LocalUser = "user"

// AuthMiddleware exige un Bearer Token no vacío. El almacén simulado no
// valida la firma (no tiene el secreto del colaborador de identidad), pero
// reproduce el contrato del almacén real: sin credencial → 401 inmediato.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		c.Locals(LocalUser, requestUserFromHeader(c.Get("X-User")))
		return c.Next()
	}
}

func requestUserFromHeader(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}

// requestUser devuelve el usuario de procedencia para estampar createdBy.
func requestUser(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalUser).(string); ok && v != "" {
		return v
	}
	return "dev"
}
