package dto

import (
	"strings"
	"time"

	"github.com/sellerhub/backoffice-api/pkg/utils"
)

// ServiceFromPath derives the service tag from the request path:
// "/api/products/7" becomes "api.products.7".
func ServiceFromPath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	return strings.Join(parts, ".")
}

// SuccessResponse is the envelope every successful endpoint returns. Service
// identifies the route that produced the response.
type SuccessResponse struct {
	Code      int       `json:"code" example:"200"`
	Message   string    `json:"message" example:"request processed successfully"`
	Service   string    `json:"service" example:"api.products"`
	EventDate time.Time `json:"eventDate" example:"2025-03-20T15:30:45.123Z"`
	Registers any       `json:"registers"`
}

// PaginatedResponse is the list envelope: a SuccessResponse plus page
// metadata.
type PaginatedResponse struct {
	SuccessResponse
	Paginate utils.Pagination `json:"paginate"`
}

const defaultSuccessMessage = "request processed successfully"

func NewSuccessResponse(code int, service, message string, registers any) SuccessResponse {
	if message == "" {
		message = defaultSuccessMessage
	}
	return SuccessResponse{
		Code:      code,
		Message:   message,
		Service:   service,
		EventDate: time.Now().UTC(),
		Registers: registers,
	}
}

func NewPaginatedResponse(service string, registers any, paginate utils.Pagination) PaginatedResponse {
	return PaginatedResponse{
		SuccessResponse: NewSuccessResponse(200, service, "", registers),
		Paginate:        paginate,
	}
}
