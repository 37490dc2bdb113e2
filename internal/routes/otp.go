package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/otp"
)

// RegisterOTPRoutes wires the email verification endpoints.
func RegisterOTPRoutes(r fiber.Router, h *otp.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/otp")
	if rateLimiter != nil {
		group.Post("/send", rateLimiter, h.Send)
	} else {
		group.Post("/send", h.Send)
	}
	group.Post("/verify", h.Verify)
}
