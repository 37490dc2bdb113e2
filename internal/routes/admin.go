package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/admin"
)

// RegisterAdminRoutes wires the admin panel endpoints behind the admin session gate.
func RegisterAdminRoutes(r fiber.Router, h *admin.Handler, gate fiber.Handler) {
	group := r.Group("/admin")
	group.Post("/login", h.Login)

	protected := group.Group("", gate)
	protected.Post("/logout", h.Logout)
	protected.Get("/users", h.ListUsers)
	protected.Get("/redeem-requests", h.ListRedeemRequests)
	protected.Post("/redeem-requests/:id/paid", h.MarkRequestPaid)
	protected.Get("/support-messages", h.ListSupportMessages)
	protected.Post("/support-messages/:id/resolved", h.MarkMessageResolved)
}
