// Package mailer delivers plain-text notification e-mails over SMTP.
package mailer

import (
	"context"
	"errors"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"gopkg.in/mail.v2"
)

// ErrNoRecipient is returned when a message has no destination address.
var ErrNoRecipient = errors.New("mailer: empty recipient")

// Sender delivers composed messages.
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTPMailer sends messages through an SMTP relay.
type SMTPMailer struct {
	sender Sender
	from   string
}

// New creates a mailer that authenticates against host:port.
func New(host string, port int, user, password, from string) *SMTPMailer {
	if from == "" {
		from = user
	}
	return NewWithSender(mail.NewDialer(host, port, user, password), from)
}

// NewWithSender creates a mailer on top of an existing Sender.
func NewWithSender(sender Sender, from string) *SMTPMailer {
	return &SMTPMailer{sender: sender, from: from}
}

// Send delivers one plain-text message.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := m.sender.DialAndSend(msg)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("email sent", "to", to, "subject", subject)
	return nil
}

// NopMailer only logs. It is used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}
	logger.FromContext(ctx).Warnw("SMTP not configured, email not sent", "to", to, "subject", subject)
	return nil
}
