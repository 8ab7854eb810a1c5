package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// MailerService delivers a previously generated guideline document as an
// email attachment. Transport failures come back as errors with a reason;
// this is the one pipeline step with no safe fallback, so callers surface
// the failure to the user.
type MailerService interface {
	SendDocument(to, subject, body, attachmentPath, attachmentName string) error
}

// mailDialer matches *gomail.Dialer so tests can stub the SMTP transport.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer mailDialer
	sender string
}

func NewMailerService(host string, port int, username, password, sender string) MailerService {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

// SendDocument implements MailerService.
func (m *smtpMailer) SendDocument(to, subject, body, attachmentPath, attachmentName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentPath, gomail.Rename(attachmentName))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
