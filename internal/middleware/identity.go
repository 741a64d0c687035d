package middleware

import (
	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/dentora/clinic-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// WithIdentity turns the verified JWT left in locals by Protected into the
// ambient tenant.Context. It must sit directly after Protected on every
// protected group; handlers never touch raw claims.
func WithIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, ok := c.Locals("user").(*jwt.Token)
		if !ok || parsed == nil {
			return unauthorized(c)
		}
		claims, ok := parsed.Claims.(*token.Claims)
		if !ok {
			return unauthorized(c)
		}
		ident, err := claims.Identity()
		if err != nil {
			return unauthorized(c)
		}

		tenant.With(c, tenant.Context{
			TenantID: ident.TenantID,
			UserID:   ident.UserID,
			Role:     ident.Role,
		})
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized",
	})
}
