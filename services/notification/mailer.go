package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"campusportal/models"
	"campusportal/utils"

	"go.uber.org/zap"
)

// Mailer delivers a dequeued email.
type Mailer interface {
	Send(ctx context.Context, p models.EmailPayload) error
}

// SMTPMailer sends through a plain SMTP relay with optional PLAIN auth.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(ctx context.Context, p models.EmailPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{p.To}, composeMessage(m.From, p)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", p.To, err)
	}
	return nil
}

func composeMessage(from string, p models.EmailPayload) []byte {
	var b strings.Builder
	b.WriteString("From: " + stripCRLF(from) + "\r\n")
	b.WriteString("To: " + stripCRLF(p.To) + "\r\n")
	b.WriteString("Subject: " + stripCRLF(p.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(p.Body, "\n", "\r\n"))
	return []byte(b.String())
}

func stripCRLF(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogMailer writes emails to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, p models.EmailPayload) error {
	utils.GetLogger().Info("Email (not sent)", zap.String("to", p.To), zap.String("subject", p.Subject))
	return nil
}
