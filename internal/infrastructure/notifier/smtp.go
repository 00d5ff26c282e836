package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"dev-orbit.backend/pkg/logger"
)

// Provider holds one SMTP endpoint's settings
type Provider struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (p Provider) configured() bool {
	return p.Host != "" && p.From != ""
}

func (p Provider) addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// SMTPNotifier delivers mail through a primary provider with a single
// fallback swap. Overall success is reported if either provider sends.
type SMTPNotifier struct {
	primary  Provider
	fallback Provider
}

var sendMail = smtp.SendMail

// NewSMTPNotifier creates a notifier over the given providers
func NewSMTPNotifier(primary, fallback Provider) *SMTPNotifier {
	return &SMTPNotifier{primary: primary, fallback: fallback}
}

// Send delivers a message, trying the primary provider first and the
// fallback second. Failures collapse to false; nothing is retried.
func (n *SMTPNotifier) Send(ctx context.Context, toAddress, subject, body string) bool {
	for _, p := range []Provider{n.primary, n.fallback} {
		if !p.configured() {
			continue
		}
		if err := n.deliver(p, toAddress, subject, body); err != nil {
			logger.Warn(ctx, "mail delivery failed",
				zap.String("host", p.Host),
				zap.Error(err),
			)
			continue
		}
		return true
	}
	return false
}

func (n *SMTPNotifier) deliver(p Provider, toAddress, subject, body string) error {
	msg := []byte("From: " + p.From + "\r\n" +
		"To: " + toAddress + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	var auth smtp.Auth
	if p.Username != "" {
		auth = smtp.PlainAuth("", p.Username, p.Password, p.Host)
	}
	return sendMail(p.addr(), auth, p.From, []string{toAddress}, msg)
}
