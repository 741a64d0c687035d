package handlers

import (
	"errors"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	staff, err := h.staffService.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list staff",
		})
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid staff id")
	}

	resp, err := h.staffService.Get(id, tenantID)
	if err != nil {
		return notFound(c, "Staff member not found")
	}
	return c.JSON(resp)
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.staffService.Create(tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid staff id")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.staffService.Update(id, tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(resp)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid staff id")
	}

	if err := h.staffService.Delete(id, tenantID); err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete staff",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
