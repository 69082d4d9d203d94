package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"albumstore/internal/config"
)

type Mailer interface {
	SendContact(ctx context.Context, name, email, message string) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.Contact.ResendAPIKey),
		from:   cfg.Contact.FromAddress,
		to:     cfg.Contact.ToAddress,
	}
}

func (m *ResendMailer) SendContact(ctx context.Context, name, email, message string) error {
	subject := "New Contact Form Message"
	if name != "" {
		subject = fmt.Sprintf("New Contact Form Message from %s", name)
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    contactHTML(name, email, message),
		Text:    contactText(name, email, message),
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("ошибка отправки письма через Resend: %w", err)
	}

	return nil
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}

func contactHTML(name, email, message string) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<hr />
<h3>Message:</h3>
<p>%s</p>`,
		orNotProvided(name),
		orNotProvided(email),
		strings.ReplaceAll(message, "\n", "<br />"),
	)
}

func contactText(name, email, message string) string {
	return fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s

Message:
%s`,
		orNotProvided(name),
		orNotProvided(email),
		message,
	)
}
