package support

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/validate"
)

// Handler exposes the support ticket submission endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds a support HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type submitRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

func responseOf(m Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		Subject:   m.Subject,
		Message:   m.Body,
		Status:    m.Status,
		SentAt:    m.SentAt,
	}
}

// Submit records a support ticket for the caller.
func (h *Handler) Submit(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.LocalUserID).(string)

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.Submit(c.UserContext(), SubmitInput{
		UserID:  uid,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(responseOf(msg))
}
