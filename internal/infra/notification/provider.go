package notification

import (
	"log/slog"

	"delicious/config"
	"delicious/internal/domain/constants"
	"delicious/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher `optional:"true"`
}

// NewMailer picks the delivery configured under mail.delivery.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		params.Logger.Info("Mail not configured, logging messages instead")

		return NewLogMailer(params.Logger)
	}

	switch cfg.Delivery {
	case constants.MailDeliveryDirect:
		return NewSMTPMailer(cfg, params.Logger)
	case constants.MailDeliveryQueue:
		if params.Publisher == nil {
			return nil, errors.New("queued mail delivery needs an event publisher")
		}

		return NewQueuedMailer(params.Publisher, params.Logger), nil
	case constants.MailDeliveryLog, "":
		return NewLogMailer(params.Logger)
	default:
		return nil, errors.Errorf("unknown mail delivery: %s", cfg.Delivery)
	}
}

// NewDirectMailer sends without going through the queue. The mail worker uses
// it so that consuming a mail event never publishes another one.
func NewDirectMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.SMTP.Host == "" {
		params.Logger.Info("SMTP not configured, logging messages instead")

		return NewLogMailer(params.Logger)
	}

	return NewSMTPMailer(cfg, params.Logger)
}
