// Package notification delivers outbound email: through SMTP, through the
// mail worker queue, or into the log during development.
package notification

import (
	"context"
	"log/slog"
	"time"

	"delicious/config"
	"delicious/internal/domain/service"
	"delicious/internal/errors"

	"github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 10 * time.Second

// smtpMailer renders an embedded template and sends it over SMTP.
type smtpMailer struct {
	from      string
	host      string
	options   []mail.Option
	templates templateSet
	logger    *slog.Logger
}

// NewSMTPMailer builds an SMTP mailer from the mail config.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	return newSMTPMailer(cfg, logger)
}

func newSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) (*smtpMailer, error) {
	if cfg == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("mail from address is required")
	}

	templates, err := defaultTemplates()
	if err != nil {
		return nil, err
	}

	timeout := cfg.SMTP.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	options := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
		mail.WithTimeout(timeout),
	}
	if cfg.SMTP.TLS {
		options = append(options, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.SMTP.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	return &smtpMailer{
		from:      cfg.From,
		host:      cfg.SMTP.Host,
		options:   options,
		templates: templates,
		logger:    logger,
	}, nil
}

// Send dials, delivers one message and hangs up.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	message, err := m.buildMessage(msg)
	if err != nil {
		return errors.Wrap(service.ErrMalformedMail, err.Error())
	}

	client, err := mail.NewClient(m.host, m.options...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send %s mail", msg.TemplateName)
	}

	m.logger.InfoContext(ctx, "Mail sent",
		slog.String("template", msg.TemplateName),
		slog.String("to", msg.To),
	)

	return nil
}

func (m *smtpMailer) buildMessage(msg *service.MailMessage) (*mail.Msg, error) {
	pair, err := m.templates.lookup(msg.TemplateName)
	if err != nil {
		return nil, err
	}

	message := mail.NewMsg()
	if err := message.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := message.AddToFormat(msg.Name, msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	message.Subject(msg.Subject)

	data := templateData{Name: msg.Name, Data: msg.Data}
	if err := message.SetBodyHTMLTemplate(pair.html, data); err != nil {
		return nil, errors.Wrap(err, "failed to render html body")
	}
	if err := message.AddAlternativeTextTemplate(pair.text, data); err != nil {
		return nil, errors.Wrap(err, "failed to render text body")
	}

	return message, nil
}
