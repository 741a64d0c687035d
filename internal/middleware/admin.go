package middleware

import (
	"errors"
	"log/slog"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates user-management mutations. It runs strictly before the
// handler, so a 403 means nothing was written.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := tenant.RequireRole(c, models.RoleAdmin)
		if err == nil {
			return c.Next()
		}
		if errors.Is(err, tenant.ErrContextMissing) {
			// Wiring bug: the gate did not run before this guard.
			slog.Error("role check without request identity", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
