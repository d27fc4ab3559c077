package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
)

// KiwifyStrategy validates and normalizes Kiwify order deliveries.
type KiwifyStrategy struct {
	secret string
}

func NewKiwifyStrategy(secret string) *KiwifyStrategy {
	return &KiwifyStrategy{secret: secret}
}

func (s *KiwifyStrategy) Verify(body []byte, signature string) error {
	return verifySignature(body, signature, s.secret)
}

// Normalize maps the order status onto a sale outcome: paid becomes a
// completed sale, refunded and chargedback become refunds. Everything else
// (waiting payment, refused) carries no outcome and is dropped.
func (s *KiwifyStrategy) Normalize(body []byte) (*domain.SaleEvent, error) {
	var payload dto.KiwifyWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewValidationError("payload", "body is not valid JSON")
	}
	if err := payload.Validate(); err != nil {
		return nil, domain.NewValidationError("payload", err.Error())
	}

	var status domain.SaleStatus
	switch payload.OrderStatus {
	case dto.KiwifyOrderPaid:
		status = domain.SaleStatusCompleted
	case dto.KiwifyOrderRefunded, dto.KiwifyOrderChargedback:
		status = domain.SaleStatusRefunded
	default:
		return nil, nil
	}

	amount, err := parseKiwifyAmount(payload.Commissions.ChargeAmount)
	if err != nil {
		return nil, domain.NewValidationError("Commissions.charge_amount", err.Error())
	}

	return &domain.SaleEvent{
		EventID:    uuid.NewString(),
		Source:     domain.WebhookSourceKiwify,
		EventType:  string(payload.WebhookEventType),
		OrderID:    payload.OrderID,
		ProductID:  payload.Product.ProductID,
		CustomerID: payload.Customer.Email,
		Amount:     amount,
		Status:     status,
		OccurredAt: parseKiwifyTime(payload.UpdatedAt),
	}, nil
}

// parseKiwifyAmount converts the wire amount, sent as a string of cents,
// into a currency value.
func parseKiwifyAmount(raw string) (float64, error) {
	var cents int64
	if _, err := fmt.Sscanf(raw, "%d", &cents); err != nil {
		return 0, fmt.Errorf("charge amount %q is not numeric", raw)
	}
	if cents < 0 {
		return 0, fmt.Errorf("charge amount must be non-negative")
	}
	return float64(cents) / 100, nil
}

func parseKiwifyTime(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
