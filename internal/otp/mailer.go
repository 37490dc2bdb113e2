package otp

import (
	"context"
	"log/slog"
)

// Email describes a transactional email payload.
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer delivers transactional email to downstream providers.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LoggerMailer is a stub implementation that writes emails to the logger.
// Used in dev mode when no delivery API key is configured.
type LoggerMailer struct {
	logger *slog.Logger
}

// NewLoggerMailer constructs a logging mailer stub.
func NewLoggerMailer(logger *slog.Logger) *LoggerMailer {
	return &LoggerMailer{logger: logger}
}

// Send writes the email to the structured logger instead of delivering it.
func (m *LoggerMailer) Send(_ context.Context, email Email) error {
	if m == nil || m.logger == nil {
		return nil
	}
	m.logger.Info("email", "to", email.To, "subject", email.Subject, "html", email.HTML)
	return nil
}
