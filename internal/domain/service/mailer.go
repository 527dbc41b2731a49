package service

import (
	"context"

	"delicious/internal/errors"
)

// ErrMalformedMail marks a message that can never be delivered as is:
// an unknown template or an unusable address. Retrying it is pointless.
var ErrMalformedMail = errors.New("malformed mail message")

// MailMessage is a templated email to one recipient.
type MailMessage struct {
	To           string
	Name         string
	Subject      string
	TemplateName string
	Data         map[string]string
}

// Mailer is the outbound notification collaborator.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
