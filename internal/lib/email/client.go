// Package email provides confirmation email sending.
//
// Two implementations exist behind the same capability surface:
//   - Client, backed by Resend (resend-go), used when an API key is
//     configured
//   - StubSender, a simulated sender for local development
//
// Like the notifier, sending is best-effort: implementations report
// success or failure, they never surface an error to the caller.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/himawari-kids/inquiry-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client sends confirmation emails through the Resend API.
type Client struct {
	client      *resend.Client
	fromName    string
	fromAddress string
	logger      *zerolog.Logger
}

// NewClient creates an email Client from explicit config.
func NewClient(cfg config.EmailConfig, logger *zerolog.Logger) *Client {
	return &Client{
		client:      resend.NewClient(cfg.ResendAPIKey),
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
		logger:      logger,
	}
}

// confirmationTemplate renders the acknowledgment body. Inlined so the
// binary needs no template directory on disk.
var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<p>Thank you for your inquiry!</p>
<p>We have received your question about a program for <strong>{{.ChildName}}</strong>
and will get back to you within two business days.</p>
<p>Himawari Kids Garden</p>`))

// SendConfirmation sends the acknowledgment email for one inquiry.
//
// Returns true when Resend accepted the email. Failures are logged
// and reported as false; they never fail the inquiry submission.
func (c *Client) SendConfirmation(ctx context.Context, to, childName string) bool {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, struct{ ChildName string }{ChildName: childName}); err != nil {
		c.logger.Error().
			Err(errors.Wrap(err, "failed to render confirmation template")).
			Msg("confirmation email not sent")
		return false
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress),
		To:      []string{to},
		Subject: "We received your inquiry",
		Html:    body.String(),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		c.logger.Error().
			Err(errors.Wrap(err, "resend send failed")).
			Str("to", to).
			Msg("confirmation email not sent")
		return false
	}

	c.logger.Info().Str("to", to).Msg("confirmation email sent")
	return true
}
