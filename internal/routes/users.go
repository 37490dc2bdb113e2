package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/user"
)

// RegisterUserRoutes wires the public registration and login endpoints.
func RegisterUserRoutes(r fiber.Router, h *user.Handler) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// RegisterProfileRoutes wires the session-protected profile endpoints.
func RegisterProfileRoutes(r fiber.Router, h *user.Handler) {
	r.Get("/me", h.Me)
	r.Post("/logout", h.Logout)
}
