package service

import (
	"github.com/himawari-kids/inquiry-api/internal/server"
)

// Services is a container that groups all business services.
type Services struct {
	Inquiry *InquiryService
}

// NewService constructs the services container.
func NewService(s *server.Server) *Services {
	return &Services{
		Inquiry: NewInquiryService(s),
	}
}
