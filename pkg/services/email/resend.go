package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Sender delivers a composed report to its recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResendSender sends HTML mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

var _ Sender = (*ResendSender)(nil)

// NewResendSender fails when the API key or sender address is missing:
// without either, no report can ever leave the pipeline.
func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, errors.New("resend API key is not set")
	}
	if from == "" {
		return nil, errors.New("sender email is not set")
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("email_id", sent.Id).
		Str("to", to).
		Msg("email sent")
	return nil
}
