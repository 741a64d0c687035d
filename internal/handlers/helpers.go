package handlers

import (
	"log/slog"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestTenant resolves the caller's tenant. A missing ambient context past
// the gate is a wiring defect and surfaces as 500, never as a silent pass.
func requestTenant(c *fiber.Ctx) (uuid.UUID, bool) {
	tenantID, err := tenant.CurrentTenant(c)
	if err != nil {
		slog.Error("tenant context missing", "path", c.Path(), "error", err)
		_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
		return uuid.Nil, false
	}
	return tenantID, true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}
