package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/ads"
)

// RegisterAdRoutes wires the watch-an-ad endpoints.
func RegisterAdRoutes(r fiber.Router, h *ads.Handler) {
	group := r.Group("/ads")
	group.Post("/start", h.Start)
	group.Post("/complete", h.Complete)
}
