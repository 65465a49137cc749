package notify

import (
	"context"
	"io"

	"foodigo/internal/domain"

	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	Dialer *gomail.Dialer
	From   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		Dialer: gomail.NewDialer(host, port, user, password),
		From:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string, attachments ...domain.Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Dialer.DialAndSend(m.buildMessage(to, subject, html, attachments))
}

func (m *SMTPMailer) buildMessage(to, subject, html string, attachments []domain.Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	for _, attachment := range attachments {
		content := attachment.Content
		msg.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return msg
}
