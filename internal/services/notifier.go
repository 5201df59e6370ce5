package services

import (
	"fmt"
	"log"
	"net/smtp"
)

// Notifier delivers applicant-facing email. Delivery is fire-and-forget:
// callers log failures and never let them fail the triggering request.
type Notifier interface {
	Send(to, subject, body string) error
}

// SMTPNotifier sends mail through a plain SMTP relay.
type SMTPNotifier struct {
	host string
	port string
	from string
}

// NewSMTPNotifier creates an SMTPNotifier.
func NewSMTPNotifier(host, port, from string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, from: from}
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, to, subject, body)
	addr := n.host + ":" + n.port
	if err := smtp.SendMail(addr, nil, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// LogNotifier logs instead of sending; used when SMTP is not configured
// and in tests.
type LogNotifier struct{}

func (LogNotifier) Send(to, subject, body string) error {
	log.Printf("notification to %s: %s", to, subject)
	return nil
}
