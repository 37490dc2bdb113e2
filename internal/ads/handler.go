package ads

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes the ad-watch endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an ads HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Start opens a timed ad view for the caller.
func (h *Handler) Start(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)

	v, err := h.svc.Start(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"view_id":          v.ID,
		"duration_seconds": int(h.svc.Duration().Seconds()),
	})
}

type completeRequest struct {
	ViewID string `json:"view_id" validate:"required"`
}

// Complete claims the reward for a finished ad view.
func (h *Handler) Complete(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)

	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	u, err := h.svc.Complete(c.UserContext(), uid, req.ViewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrViewNotFound):
			return fiber.NewError(http.StatusNotFound, "ad view not found")
		case errors.Is(err, ErrNotFinished):
			return fiber.NewError(http.StatusConflict, "ad still playing")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"points": u.Points})
}
