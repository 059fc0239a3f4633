// Package mailer sends outbound email over SMTP.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"artfolio/internal/config"
)

// Sender is the email collaborator used by the subscription flow.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	from   string
	dialer dialer
}

func New(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		from: cfg.From,
		dialer: gomail.NewDialer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
		),
	}
}

// Send delivers an HTML message. gomail has no context support, so ctx is only checked up front.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	const op = "mailer.SMTPMailer.Send"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.dialer.DialAndSend(m.message(to, subject, body)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *SMTPMailer) message(to, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}
