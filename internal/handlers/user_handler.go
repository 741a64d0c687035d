package handlers

import (
	"errors"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the admin-only user management endpoints. The role check
// happens in middleware.RequireAdmin before any of these run.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	users, err := h.userService.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}
	return c.JSON(users)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.userService.Create(tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrStaffNotFound):
			return notFound(c, err.Error())
		default:
			return badRequest(c, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.userService.Update(id, tenantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(resp)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.userService.ChangePassword(id, tenantID, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *UserHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.userService.SetActive(id, tenantID, active); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user",
		})
	}
	return c.JSON(fiber.Map{"message": "User updated"})
}

func (h *UserHandler) LinkStaff(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	staffID, err := parseID(c, "staffId")
	if err != nil {
		return badRequest(c, "Invalid staff id")
	}

	if err := h.userService.LinkStaff(userID, staffID, tenantID); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrStaffNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyLinked):
			return badRequest(c, err.Error())
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to link user",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "User linked to staff"})
}

func (h *UserHandler) UnlinkStaff(c *fiber.Ctx) error {
	tenantID, ok := requestTenant(c)
	if !ok {
		return nil
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.userService.UnlinkStaff(userID, tenantID); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrNotLinked):
			return badRequest(c, err.Error())
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to unlink user",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "User unlinked from staff"})
}
