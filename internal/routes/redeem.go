package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/redeem"
)

// RegisterRedeemRoutes wires the redemption submission endpoint. When Redis is
// available submissions are idempotency-key protected against double sends.
func RegisterRedeemRoutes(r fiber.Router, h *redeem.Handler, idempotency fiber.Handler) {
	if idempotency != nil {
		r.Post("/redeem", idempotency, h.Submit)
		return
	}
	r.Post("/redeem", h.Submit)
}
