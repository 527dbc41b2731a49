package service

import (
	"context"
)

// MailEvent is a queued email handled by the mail worker.
type MailEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	EventID      string            `json:"event_id"`
	To           string            `json:"to"`
	Name         string            `json:"name"`
	Subject      string            `json:"subject"`
	TemplateName string            `json:"template_name"`
	Data         map[string]string `json:"data,omitempty"`
}

// EventPublisher publishes events to a message queue.
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery.
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
