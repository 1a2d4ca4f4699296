// Package mailer implements outbound email dispatch over SMTP.
//
// The password-reset flow is its only consumer today; delivery is
// synchronous and a failure is reported to the caller as an explicit error,
// never swallowed.
package mailer

import (
	"context"
	"fmt"

	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer dispatches email messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// smtpMailer sends mail through a plain SMTP dialer.
type smtpMailer struct {
	cfg    config.Email
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] backed by the configured SMTP server.
func NewSMTPMailer(cfg config.Email, logger *logger.Logger) Mailer {
	logger.Debug().Str("host", cfg.Host).Msg("creating smtp mailer")
	return &smtpMailer{
		cfg:    cfg,
		logger: logger,
	}
}

// Send dials the SMTP server and delivers the message.
// Missing SMTP configuration and dial/send failures are both surfaced as
// errors: the caller must not treat an undelivered reset mail as success.
func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if m.cfg.Host == "" || m.cfg.From == "" {
		return fmt.Errorf("email config missing")
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(gm); err != nil {
		log.Err(err).Str("to", msg.To).Msg("error sending email")
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return nil
}
