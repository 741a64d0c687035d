package routes

import (
	"time"

	"github.com/dentora/clinic-backend/internal/config"
	"github.com/dentora/clinic-backend/internal/handlers"
	"github.com/dentora/clinic-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	User        *handlers.UserHandler
	Staff       *handlers.StaffHandler
	Patient     *handlers.PatientHandler
	Appointment *handlers.AppointmentHandler
	Dashboard   *handlers.DashboardHandler
}

// Setup wires the route table. Only login and health are public; everything
// else sits behind the request gate, and user management additionally behind
// the admin guard.
func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", h.Health.Check)

	auth := api.Group("/auth")
	// Stricter limit on credential guessing: 10 req/min per IP
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)

	// Authenticated, any role
	gate := []fiber.Handler{middleware.Protected(cfg), middleware.WithIdentity()}

	dashboard := api.Group("/dashboard", gate...)
	dashboard.Get("/stats", h.Dashboard.Stats)

	patients := api.Group("/patients", gate...)
	patients.Get("/", h.Patient.List)
	patients.Get("/:id", h.Patient.Get)
	patients.Post("/", h.Patient.Create)
	patients.Put("/:id", h.Patient.Update)
	patients.Delete("/:id", h.Patient.Delete)

	staff := api.Group("/staff", gate...)
	staff.Get("/", h.Staff.List)
	staff.Get("/:id", h.Staff.Get)
	staff.Post("/", h.Staff.Create)
	staff.Put("/:id", h.Staff.Update)
	staff.Delete("/:id", h.Staff.Delete)

	appointments := api.Group("/appointments", gate...)
	appointments.Get("/", h.Appointment.List)
	appointments.Get("/:id", h.Appointment.Get)
	appointments.Post("/", h.Appointment.Create)
	appointments.Put("/:id", h.Appointment.Update)
	appointments.Delete("/:id", h.Appointment.Delete)

	// Authenticated + ADMIN
	users := api.Group("/users", append(gate, middleware.RequireAdmin())...)
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Put("/:id", h.User.Update)
	users.Put("/:id/password", h.User.ChangePassword)
	users.Put("/:id/deactivate", h.User.Deactivate)
	users.Put("/:id/activate", h.User.Activate)
	users.Post("/:userId/link-staff/:staffId", h.User.LinkStaff)
	users.Delete("/:userId/unlink-staff", h.User.UnlinkStaff)
}
