package redeem

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes the redemption submission endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds a redemption HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type submitRequest struct {
	UPIID    string `json:"upi_id"`
	GiftCard string `json:"gift_card" validate:"omitempty,oneof=amazon google-play apple netflix spotify"`
	Note     string `json:"note" validate:"max=500"`
}

type requestResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	UPIID       string    `json:"upi_id,omitempty"`
	GiftCard    string    `json:"gift_card,omitempty"`
	Note        string    `json:"note,omitempty"`
	Points      int64     `json:"points"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

func responseOf(r Request) requestResponse {
	return requestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		UPIID:       r.UPIID,
		GiftCard:    r.GiftCard,
		Note:        r.Note,
		Points:      r.Points,
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
	}
}

// Submit records a redemption request for the caller.
func (h *Handler) Submit(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Submit(c.UserContext(), SubmitInput{
		UserID:   uid,
		UPIID:    req.UPIID,
		GiftCard: req.GiftCard,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientPoints):
			return fiber.NewError(http.StatusBadRequest, "insufficient points")
		case errors.Is(err, ErrPayoutTarget), errors.Is(err, ErrUnknownGiftCard):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(responseOf(res))
}
