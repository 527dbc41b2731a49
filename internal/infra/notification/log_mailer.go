package notification

import (
	"context"
	"log/slog"

	"delicious/internal/domain/service"
	"delicious/internal/errors"
)

// logMailer writes messages to the log instead of sending them. Reset links
// show up in the console during development.
type logMailer struct {
	templates templateSet
	logger    *slog.Logger
}

// NewLogMailer returns a mailer that only logs.
func NewLogMailer(logger *slog.Logger) (service.Mailer, error) {
	templates, err := defaultTemplates()
	if err != nil {
		return nil, err
	}

	return &logMailer{templates: templates, logger: logger}, nil
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	if _, err := m.templates.lookup(msg.TemplateName); err != nil {
		return errors.Join(service.ErrMalformedMail, err)
	}

	attrs := []slog.Attr{
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("template", msg.TemplateName),
	}
	for k, v := range msg.Data {
		attrs = append(attrs, slog.String("data."+k, v))
	}
	m.logger.LogAttrs(ctx, slog.LevelInfo, "Mail delivery disabled, logging message", attrs...)

	return nil
}
