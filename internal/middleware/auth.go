package middleware

import (
	"github.com/dentora/clinic-backend/internal/config"
	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/token"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected is the request gate for non-public paths. A missing, malformed,
// expired or foreign-signed bearer token is a hard 401; there is no
// unauthenticated passthrough. Only HS256 is accepted, so a token signed with
// a different algorithm cannot downgrade verification.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.JWTSecret),
		},
		Claims: &token.Claims{},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
