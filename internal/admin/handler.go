package admin

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/redeem"
	"github.com/rewixcash/portal/internal/support"
	"github.com/rewixcash/portal/internal/user"
	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes the admin panel endpoints: reviewing users, paying out
// redemption requests and resolving support tickets.
type Handler struct {
	svc         *Service
	users       *user.Service
	redemptions *redeem.Service
	tickets     *support.Service
}

// NewHandler builds an admin HTTP handler.
func NewHandler(svc *Service, users *user.Service, redemptions *redeem.Service, tickets *support.Service) *Handler {
	return &Handler{svc: svc, users: users, redemptions: redemptions, tickets: tickets}
}

type loginRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

// Login verifies the shared access code and returns an admin session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.svc.Login(c.UserContext(), req.AccessCode)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			return fiber.NewError(http.StatusUnauthorized, "invalid access code")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"token": sess.Token})
}

// Logout ends the admin session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.LocalSessionToken).(string)
	if err := h.svc.Logout(c.UserContext(), token); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}

// ListUsers returns every registered user in registration order.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"id":            u.ID,
			"full_name":     u.FullName,
			"email":         u.Email,
			"phone_number":  u.PhoneNumber,
			"points":        u.Points,
			"registered_at": u.RegisteredAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"users": out})
}

// ListRedeemRequests returns every redemption request in submission order.
func (h *Handler) ListRedeemRequests(c *fiber.Ctx) error {
	requests, err := h.redemptions.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(requests))
	for _, r := range requests {
		out = append(out, fiber.Map{
			"id":           r.ID,
			"user_id":      r.UserID,
			"user_name":    r.UserName,
			"user_email":   r.UserEmail,
			"upi_id":       r.UPIID,
			"gift_card":    r.GiftCard,
			"note":         r.Note,
			"points":       r.Points,
			"status":       r.Status,
			"requested_at": r.RequestedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"requests": out})
}

// MarkRequestPaid records the payout for a redemption request.
func (h *Handler) MarkRequestPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.redemptions.MarkPaid(c.UserContext(), id); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": redeem.StatusPaid})
}

// ListSupportMessages returns every support ticket in submission order.
func (h *Handler) ListSupportMessages(c *fiber.Ctx) error {
	messages, err := h.tickets.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(messages))
	for _, m := range messages {
		out = append(out, fiber.Map{
			"id":         m.ID,
			"user_id":    m.UserID,
			"user_name":  m.UserName,
			"user_email": m.UserEmail,
			"subject":    m.Subject,
			"message":    m.Body,
			"status":     m.Status,
			"sent_at":    m.SentAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"messages": out})
}

// MarkMessageResolved closes a support ticket.
func (h *Handler) MarkMessageResolved(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.tickets.MarkResolved(c.UserContext(), id); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": support.StatusResolved})
}
