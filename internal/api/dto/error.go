package dto

import "time"

// ErrorResponse mirrors the success envelope minus registers.
type ErrorResponse struct {
	Code      int       `json:"code" example:"404"`
	Message   string    `json:"message" example:"product not found"`
	EventDate time.Time `json:"eventDate" example:"2025-03-20T15:30:45.123Z"`
	Service   string    `json:"service" example:"api.products"`
}

func NewErrorResponse(code int, service, message string) ErrorResponse {
	return ErrorResponse{
		Code:      code,
		Message:   message,
		EventDate: time.Now().UTC(),
		Service:   service,
	}
}
