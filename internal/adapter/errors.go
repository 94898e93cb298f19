package adapter

import "errors"

var (
	// ErrMailWebhookUnavailable is returned when the mail webhook cannot
	// be reached or answers with a server error.
	ErrMailWebhookUnavailable = errors.New("mail webhook unavailable")

	// ErrMailRejected is returned when the mail webhook answers with a
	// client error, i.e. it refused the payload.
	ErrMailRejected = errors.New("mail webhook rejected the message")
)
