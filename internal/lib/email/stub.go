package email

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// StubSender simulates a confirmation email sender.
//
// It is the default when no Resend API key is configured: it waits a
// short moment (to keep the handler's sequencing realistic) and then
// reports success. Useful for local development and tests.
type StubSender struct {
	// Delay is the simulated send duration.
	Delay time.Duration

	logger *zerolog.Logger
}

// NewStubSender creates a simulated sender with a 100ms delay.
func NewStubSender(logger *zerolog.Logger) *StubSender {
	return &StubSender{
		Delay:  100 * time.Millisecond,
		logger: logger,
	}
}

// SendConfirmation pretends to send an email and always succeeds,
// unless the context is cancelled first.
func (s *StubSender) SendConfirmation(ctx context.Context, to, childName string) bool {
	select {
	case <-time.After(s.Delay):
	case <-ctx.Done():
		s.logger.Warn().Str("to", to).Msg("confirmation email cancelled")
		return false
	}

	s.logger.Info().
		Str("to", to).
		Str("child_name", childName).
		Msg("confirmation email simulated")
	return true
}
