package service

import (
	"context"

	"github.com/himawari-kids/inquiry-api/internal/inquiry"
	"github.com/himawari-kids/inquiry-api/internal/middleware"
	"github.com/himawari-kids/inquiry-api/internal/server"
)

// ackMessage is the fixed acknowledgment returned to the submitter on
// every valid inquiry, regardless of downstream delivery outcome.
const ackMessage = "Thank you for your inquiry! We will get back to you within two business days."

// InquiryService orchestrates one inquiry submission end to end.
type InquiryService struct {
	server *server.Server
}

// NewInquiryService constructs the inquiry service.
func NewInquiryService(s *server.Server) *InquiryService {
	return &InquiryService{server: s}
}

// SubmitInquiryInput carries the validated, still-raw form values.
// Validation has already happened at the handler; sanitization happens
// here, so no un-validated data ever reaches the formatter or the
// notifier.
type SubmitInquiryInput struct {
	ParentName       string
	ChildName        string
	ChildAge         int
	Email            string
	Phone            string
	PreferredProgram string
	Message          string
}

// Submit runs the pipeline for one validated inquiry:
// sanitize -> format -> notify -> confirm.
//
// Notification and confirmation are best-effort: failures are logged
// against the request and deliberately do not change the caller-facing
// outcome. Notification is always attempted before confirmation, and
// both sequentially within this request. Returns the fixed
// acknowledgment message.
func (s *InquiryService) Submit(ctx context.Context, in SubmitInquiryInput) string {
	logger := middleware.LoggerFromContext(ctx)

	sanitized := inquiry.Inquiry{
		ParentName:       inquiry.SanitizeText(in.ParentName),
		ChildName:        inquiry.SanitizeText(in.ChildName),
		ChildAge:         in.ChildAge,
		Email:            inquiry.SanitizeEmail(in.Email),
		Phone:            inquiry.SanitizePhone(in.Phone),
		PreferredProgram: in.PreferredProgram,
		Message:          inquiry.SanitizeText(in.Message),
	}

	notification := inquiry.Format(sanitized)

	// Best-effort relay to the staff chat. The result is a value, not
	// an error: delivery failure must not fail the submission.
	result := s.server.Notifier.Notify(ctx, notification.Text)
	if result.Delivered {
		logger.Info().
			Str("program", notification.ProgramLabel).
			Msg("inquiry notification delivered")
	} else {
		logger.Error().
			Err(result.Err).
			Msg("inquiry notification failed")
	}

	// Best-effort acknowledgment email, always after the notification.
	if ok := s.server.Confirmation.SendConfirmation(ctx, sanitized.Email, sanitized.ChildName); !ok {
		logger.Error().
			Str("email", sanitized.Email).
			Msg("confirmation email failed")
	}

	return ackMessage
}
