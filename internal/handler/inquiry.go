package handler

import (
	"net/http"

	"github.com/himawari-kids/inquiry-api/internal/server"
	"github.com/himawari-kids/inquiry-api/internal/service"
	"github.com/himawari-kids/inquiry-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// InquiryHandler accepts childcare-program inquiry submissions.
type InquiryHandler struct {
	Handler
	inquiries *service.InquiryService
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(s *server.Server, inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		Handler:   NewHandler(s),
		inquiries: inquiries,
	}
}

// SubmitInquiryRequest is the inquiry form payload.
//
// Fields are validated in declaration order and all errors accumulate,
// matching form UX expectations: the client gets every field problem
// in one response. person_name and phone are custom rules registered
// in the validation package.
type SubmitInquiryRequest struct {
	ParentName       string `json:"parentName" validate:"required,min=2,max=100,person_name"`
	ChildName        string `json:"childName" validate:"required,min=2,max=100,person_name"`
	ChildAge         int    `json:"childAge" validate:"required,gte=2,lte=12"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,phone"`
	PreferredProgram string `json:"preferredProgram" validate:"omitempty,oneof=infant toddlers preschool kindergarten afterschool summer"`
	Message          string `json:"message" validate:"omitempty,max=1000"`
}

// Validate applies the struct's validation rules.
func (r *SubmitInquiryRequest) Validate() error {
	return validation.Struct(r)
}

// SubmitInquiryResponse acknowledges a valid submission.
type SubmitInquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitInquiry handles POST /api/inquiry.
//
// Validation failures never reach this function; the generic pipeline
// has already turned them into a 400 with field errors. A valid
// submission always gets a 200 acknowledgment: downstream delivery is
// best-effort and its failures are logged by the service, not exposed.
func (h *InquiryHandler) SubmitInquiry(c echo.Context, req *SubmitInquiryRequest) (SubmitInquiryResponse, error) {
	message := h.inquiries.Submit(c.Request().Context(), service.SubmitInquiryInput{
		ParentName:       req.ParentName,
		ChildName:        req.ChildName,
		ChildAge:         req.ChildAge,
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredProgram: req.PreferredProgram,
		Message:          req.Message,
	})

	return SubmitInquiryResponse{
		Success: true,
		Message: message,
	}, nil
}

// Submit returns the echo handler for the submit endpoint, wired
// through the generic pipeline.
func (h *InquiryHandler) Submit() echo.HandlerFunc {
	return Handle(h.Handler, h.SubmitInquiry, http.StatusOK, func() *SubmitInquiryRequest {
		return &SubmitInquiryRequest{}
	})
}
