package handlers

import (
	"errors"
	"time"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List returns all appointments, or the ones inside [from, to) when both
// query params are present (RFC 3339).
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" && toRaw != "" {
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return badRequest(c, "Invalid 'from': expected RFC 3339 timestamp")
		}
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return badRequest(c, "Invalid 'to': expected RFC 3339 timestamp")
		}
		appts, err := h.appointmentService.ListRange(tenantID, from, to)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to list appointments",
			})
		}
		return c.JSON(appts)
	}

	appts, err := h.appointmentService.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list appointments",
		})
	}
	return c.JSON(appts)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	resp, err := h.appointmentService.Get(id, tenantID)
	if err != nil {
		return notFound(c, "Appointment not found")
	}
	return c.JSON(resp)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.appointmentService.Create(tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) || errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.appointmentService.Update(id, tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound),
			errors.Is(err, services.ErrPatientNotFound),
			errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		default:
			return badRequest(c, err.Error())
		}
	}
	return c.JSON(resp)
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	if err := h.appointmentService.Delete(id, tenantID); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete appointment",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
