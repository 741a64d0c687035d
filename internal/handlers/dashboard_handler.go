package handlers

import (
	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	stats, err := h.dashboardService.Stats(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load dashboard stats",
		})
	}
	return c.JSON(stats)
}
