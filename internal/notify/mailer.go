package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/leasewatch/leasewatch/internal/config"
)

// Mailer sends a rendered HTML message to a single recipient.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates a Mailer that delivers over SMTP with STARTTLS.
func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

// Send delivers one message. smtp.SendMail upgrades the connection with
// STARTTLS before authenticating when the server advertises it, which
// every supported provider does on port 587.
func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", m.cfg.SenderEmail, m.cfg.SenderPassword, m.cfg.Host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.SenderName, m.cfg.SenderEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.SenderEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
