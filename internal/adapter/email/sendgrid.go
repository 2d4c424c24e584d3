// Package email sends invitation-response emails through SendGrid.
package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"boardhub/internal/core/ports"
)

type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

var _ ports.EmailSender = (*SendGridSender)(nil)

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) SendInvitationAccepted(ctx context.Context, toEmail, accepterName, boardTitle string) error {
	subject := fmt.Sprintf("%s accepted your invitation", accepterName)
	body := fmt.Sprintf("%s accepted your invitation and joined the board %q.", accepterName, boardTitle)
	return s.send(ctx, toEmail, subject, body)
}

func (s *SendGridSender) SendInvitationRejected(ctx context.Context, toEmail, rejecterName, boardTitle string) error {
	subject := fmt.Sprintf("%s declined your invitation", rejecterName)
	body := fmt.Sprintf("%s declined your invitation to the board %q.", rejecterName, boardTitle)
	return s.send(ctx, toEmail, subject, body)
}

func (s *SendGridSender) send(ctx context.Context, toEmail, subject, body string) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if toEmail == "" {
		return fmt.Errorf("recipient address is empty")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.fromEmail),
		subject,
		mail.NewEmail("", toEmail),
		body,
		fmt.Sprintf("<p>%s</p>", body),
	)

	response, err := sendgrid.NewSendClient(s.apiKey).SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}
	return nil
}
