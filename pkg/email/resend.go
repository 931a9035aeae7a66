package email

import (
	"context"
	"fmt"

	"ai-marketing-backend/internal/domain"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend transactional email API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender authenticated with the given API key
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Name() string { return "resend" }

// Send posts one email and returns the id Resend assigned to it
func (s *ResendSender) Send(ctx context.Context, msg domain.OutboundMessage) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: send failed: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return "", fmt.Errorf("resend: response carried no message id")
	}
	return sent.Id, nil
}
