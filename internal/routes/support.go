package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/support"
)

// RegisterSupportRoutes wires the support ticket endpoint with the same
// idempotency protection as redemptions.
func RegisterSupportRoutes(r fiber.Router, h *support.Handler, idempotency fiber.Handler) {
	if idempotency != nil {
		r.Post("/support", idempotency, h.Submit)
		return
	}
	r.Post("/support", h.Submit)
}
