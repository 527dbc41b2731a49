package notification

import (
	"context"
	"log/slog"

	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/service"

	"github.com/google/uuid"
)

// queuedMailer hands the message to the mail worker through the event publisher.
type queuedMailer struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewQueuedMailer publishes each message as a MailEvent.
func NewQueuedMailer(publisher service.EventPublisher, logger *slog.Logger) service.Mailer {
	return &queuedMailer{publisher: publisher, logger: logger}
}

func (m *queuedMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	event := &service.MailEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		To:           msg.To,
		Name:         msg.Name,
		Subject:      msg.Subject,
		TemplateName: msg.TemplateName,
		Data:         msg.Data,
	}

	if err := m.publisher.PublishMailEvent(ctx, event); err != nil {
		return err
	}

	m.logger.DebugContext(ctx, "Mail queued",
		slog.String("event_id", event.EventID),
		slog.String("template", event.TemplateName),
	)

	return nil
}
