package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/session"
)

// Locals keys set by the session middlewares.
const (
	LocalUserID       = "user_id"
	LocalSessionToken = "session_token"
)

// SessionAuth validates the bearer session token and exposes the user id to
// downstream handlers.
func SessionAuth(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		sess, err := sessions.Get(c.UserContext(), token)
		if err != nil || sess.Admin {
			return fiber.NewError(http.StatusUnauthorized, "invalid session")
		}
		c.Locals(LocalUserID, sess.UserID)
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

// AdminAuth admits only admin sessions.
func AdminAuth(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		sess, err := sessions.Get(c.UserContext(), token)
		if err != nil || !sess.Admin {
			return fiber.NewError(http.StatusUnauthorized, "admin session required")
		}
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(authz[len("Bearer "):])
	return token, token != ""
}
