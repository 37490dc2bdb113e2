package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/otp"
	"github.com/rewixcash/portal/internal/session"
	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes registration, login and profile endpoints.
type Handler struct {
	users    *Service
	otps     *otp.Service
	sessions *session.Service
}

// NewHandler builds a user HTTP handler.
func NewHandler(users *Service, otps *otp.Service, sessions *session.Service) *Handler {
	return &Handler{users: users, otps: otps, sessions: sessions}
}

type registerRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=15"`
}

type profileResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Points       int64     `json:"points"`
	RegisteredAt time.Time `json:"registered_at"`
}

func profileOf(u User) profileResponse {
	return profileResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Points:       u.Points,
		RegisteredAt: u.RegisteredAt,
	}
}

// Register creates a user with a zero balance and opens a session. The UI
// verifies the email with an OTP before calling this.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	u, err := h.users.Register(c.UserContext(), Registration{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return fiber.NewError(http.StatusConflict, "email already registered")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	sess, err := h.sessions.Create(c.UserContext(), u.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user":  profileOf(u),
		"token": sess.Token,
	})
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Login opens a session for a returning user after verifying an emailed code.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	u, err := h.users.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusUnauthorized, "unknown email")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := h.otps.Verify(c.UserContext(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, otp.ErrInvalidCode), errors.Is(err, otp.ErrExpiredCode):
			return fiber.NewError(http.StatusUnauthorized, "invalid or expired code")
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to verify code")
		}
	}

	sess, err := h.sessions.Create(c.UserContext(), u.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":  profileOf(u),
		"token": sess.Token,
	})
}

// Me returns the caller's profile and current balance.
func (h *Handler) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)
	u, err := h.users.Get(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusNotFound, "user not found")
	}
	return c.Status(http.StatusOK).JSON(profileOf(u))
}

// Logout ends the caller's session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.LocalSessionToken).(string)
	if err := h.sessions.Clear(c.UserContext(), token); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}
