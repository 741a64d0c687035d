package tenant

import (
	"errors"

	"github.com/dentora/clinic-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsKey = "clinic_identity"

var (
	// ErrContextMissing means tenant-scoped code ran outside an authenticated
	// request. That is a wiring bug, not a client error.
	ErrContextMissing = errors.New("request context missing: handler reached without authentication")
	ErrForbidden      = errors.New("insufficient role")
)

// Context is the ambient identity of one authenticated request. It lives in
// the request's Fiber locals, so it is request-local by construction and
// vanishes when the response is written. It is never stored globally.
type Context struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     models.Role
}

// With attaches the identity to the request. Called by the request gate only.
func With(c *fiber.Ctx, rc Context) {
	c.Locals(localsKey, rc)
}

// FromContext returns the authenticated identity of the current request.
func FromContext(c *fiber.Ctx) (Context, error) {
	rc, ok := c.Locals(localsKey).(Context)
	if !ok {
		return Context{}, ErrContextMissing
	}
	return rc, nil
}

// CurrentTenant returns the caller's tenant id.
func CurrentTenant(c *fiber.Ctx) (uuid.UUID, error) {
	rc, err := FromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return rc.TenantID, nil
}

// CurrentRole returns the caller's role.
func CurrentRole(c *fiber.Ctx) (models.Role, error) {
	rc, err := FromContext(c)
	if err != nil {
		return "", err
	}
	return rc.Role, nil
}

// RequireRole fails with ErrForbidden unless the caller holds the given role.
// Admins pass every check.
func RequireRole(c *fiber.Ctx, role models.Role) error {
	rc, err := FromContext(c)
	if err != nil {
		return err
	}
	if rc.Role == role || rc.Role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
