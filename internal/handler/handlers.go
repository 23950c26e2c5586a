package handler

import (
	"github.com/himawari-kids/inquiry-api/internal/server"
	"github.com/himawari-kids/inquiry-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// This keeps router setup clean: one object is passed around instead
// of many. Handlers represent the HTTP layer: parse input, validate,
// call services, and return responses.
type Handlers struct {
	Health  *HealthHandler  // Health serves liveness endpoints.
	Inquiry *InquiryHandler // Inquiry accepts form submissions.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Inquiry: NewInquiryHandler(s, services.Inquiry),
	}
}
