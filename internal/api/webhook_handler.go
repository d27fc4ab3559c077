package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/service"
)

//go:generate mockery --name WebhookProcessor --output ../mocks
type WebhookProcessor interface {
	Process(ctx context.Context, source string, body []byte, signature string) (*domain.SaleEvent, error)
}

type WebhookHandler struct {
	*BaseHandler
	service WebhookProcessor
}

func NewWebhookHandler(service WebhookProcessor, base *BaseHandler) *WebhookHandler {
	return &WebhookHandler{BaseHandler: base, service: service}
}

// Receive godoc
// @Summary Ingest a payment-provider webhook
// @Description Verifies the signature, dedupes and enqueues the event for asynchronous processing
// @Tags webhooks
// @Accept json
// @Produce json
// @Param source query string true "Payment provider" Enums(kiwify, hotmart)
// @Param X-Signature header string true "HMAC-SHA256 hex signature of the raw body"
// @Success 202 {object} dto.SuccessResponse{registers=dto.WebhookAcceptedResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	source := c.Query("source")

	body, err := c.GetRawData()
	if err != nil {
		h.badRequest(c, err)
		return
	}

	event, err := h.service.Process(h.RequestCtx(c), source, body, c.GetHeader("X-Signature"))
	if err != nil {
		// Duplicate deliveries are acknowledged so the provider stops retrying.
		if errors.Is(err, service.ErrDuplicateWebhookEvent) {
			h.respond(c, http.StatusOK, dto.WebhookAcceptedResponse{Status: "duplicate"})
			return
		}
		h.respondError(c, err)
		return
	}

	if event == nil {
		h.respond(c, http.StatusAccepted, dto.WebhookAcceptedResponse{Status: "ignored"})
		return
	}

	h.respond(c, http.StatusAccepted, dto.WebhookAcceptedResponse{EventID: event.EventID, Status: "accepted"})
}
