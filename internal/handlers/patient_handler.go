package handlers

import (
	"errors"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PatientHandler struct {
	patientService *services.PatientService
}

func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	patients, err := h.patientService.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list patients",
		})
	}
	return c.JSON(patients)
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid patient id")
	}

	resp, err := h.patientService.Get(id, tenantID)
	if err != nil {
		return notFound(c, "Patient not found")
	}
	return c.JSON(resp)
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.patientService.Create(tenantID, &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid patient id")
	}

	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.patientService.Update(id, tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(resp)
}

func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid patient id")
	}

	if err := h.patientService.Delete(id, tenantID); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete patient",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
