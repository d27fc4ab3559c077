package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
)

// HotmartStrategy validates and normalizes Hotmart purchase deliveries.
type HotmartStrategy struct {
	secret string
}

func NewHotmartStrategy(secret string) *HotmartStrategy {
	return &HotmartStrategy{secret: secret}
}

func (s *HotmartStrategy) Verify(body []byte, signature string) error {
	return verifySignature(body, signature, s.secret)
}

// Normalize maps purchase lifecycle events onto sale outcomes. Approved and
// complete purchases become completed sales, refunds and chargebacks become
// refunds; cancellations and expirations are dropped.
func (s *HotmartStrategy) Normalize(body []byte) (*domain.SaleEvent, error) {
	var payload dto.HotmartWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewValidationError("payload", "body is not valid JSON")
	}
	if err := payload.Validate(); err != nil {
		return nil, domain.NewValidationError("payload", err.Error())
	}

	var status domain.SaleStatus
	switch payload.Event {
	case dto.HotmartEventPurchaseApproved, dto.HotmartEventPurchaseComplete:
		status = domain.SaleStatusCompleted
	case dto.HotmartEventPurchaseRefunded, dto.HotmartEventPurchaseChargeback:
		status = domain.SaleStatusRefunded
	default:
		return nil, nil
	}

	occurredAt := time.Now().UTC()
	if payload.CreationDate > 0 {
		occurredAt = time.UnixMilli(payload.CreationDate).UTC()
	}

	return &domain.SaleEvent{
		EventID:    payload.ID,
		Source:     domain.WebhookSourceHotmart,
		EventType:  string(payload.Event),
		OrderID:    payload.Data.Purchase.Transaction,
		ProductID:  strconv.FormatInt(payload.Data.Product.ID, 10),
		CustomerID: payload.Data.Buyer.Email,
		Amount:     payload.Data.Purchase.Price.Value,
		Status:     status,
		OccurredAt: occurredAt,
	}, nil
}
