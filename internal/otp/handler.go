package otp

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes the OTP send/verify endpoints used during registration.
type Handler struct {
	svc *Service
}

// NewHandler builds an OTP HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type sendRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// Send issues a fresh code to the address.
func (h *Handler) Send(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Send(c.UserContext(), req.Email, req.Name); err != nil {
		switch {
		case errors.Is(err, ErrDelivery):
			return fiber.NewError(http.StatusBadGateway, "failed to send code")
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to issue code")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "sent"})
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Verify checks a submitted code.
func (h *Handler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Verify(c.UserContext(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			return fiber.NewError(http.StatusBadRequest, "invalid code")
		case errors.Is(err, ErrExpiredCode):
			return fiber.NewError(http.StatusBadRequest, "code expired, request a new one")
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to verify code")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "verified"})
}
