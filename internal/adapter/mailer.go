// Package adapter holds outbound integrations. The only one the server
// needs is the mail webhook: an external delivery service that accepts a
// JSON payload and sends the actual email.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/models"
	"github.com/go-resty/resty/v2"
)

var _ service.Mailer = (*WebhookMailer)(nil)

// WebhookMailer implements [service.Mailer] by POSTing mail payloads to a
// configured webhook URL. Callers treat delivery as best-effort; this type
// only reports the outcome. Without a configured URL every send is a no-op.
type WebhookMailer struct {
	client *resty.Client
	logger *logger.Logger

	// disabled is set when no webhook URL is configured.
	disabled bool
}

// mailPayload is the JSON body the webhook expects.
type mailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewWebhookMailer constructs a [WebhookMailer] from the adapter config.
func NewWebhookMailer(cfg config.Adapter, log *logger.Logger) *WebhookMailer {
	if cfg.MailWebhookURL == "" {
		log.Info().Msg("mail notifications disabled: no webhook url configured")
		return &WebhookMailer{logger: log, disabled: true}
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.MailWebhookURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &WebhookMailer{client: client, logger: log}
}

// SendPasswordResetCode implements [service.Mailer].
func (m *WebhookMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	return m.send(ctx, mailPayload{
		To:      email,
		Subject: "Your password reset code",
		Body:    fmt.Sprintf("Your one-time password reset code is %s. It expires shortly; if you did not request it, ignore this message.", code),
	})
}

// SendContactNotification implements [service.Mailer].
func (m *WebhookMailer) SendContactNotification(ctx context.Context, recipient models.User, message models.ContactMessage) error {
	return m.send(ctx, mailPayload{
		To:      recipient.Email,
		Subject: fmt.Sprintf("New message from %s", message.Name),
		Body:    fmt.Sprintf("%s (%s) wrote:\n\n%s", message.Name, message.Email, message.Message),
	})
}

func (m *WebhookMailer) send(ctx context.Context, payload mailPayload) error {
	if m.disabled {
		return nil
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailWebhookUnavailable, err)
	}

	return mapWebhookError(resp)
}

func mapWebhookError(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrMailRejected, code)
	default:
		return fmt.Errorf("%w: http %d", ErrMailWebhookUnavailable, code)
	}
}
