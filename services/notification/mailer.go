package notification

import (
	"fmt"
	"net/smtp"

	"github.com/safad643/eventBook/config"
)

// Mailer delivers a single email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
}

// Send delivers the message. HTML body, single recipient.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + body + "\r\n")

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
