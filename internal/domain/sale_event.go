package domain

import "time"

type WebhookSource string

const (
	WebhookSourceKiwify  WebhookSource = "kiwify"
	WebhookSourceHotmart WebhookSource = "hotmart"
)

// SaleEvent is a platform-neutral webhook event. Strategies normalize each
// provider's payload into this shape before it is queued for processing.
type SaleEvent struct {
	EventID    string        `json:"event_id"`
	Source     WebhookSource `json:"source"`
	EventType  string        `json:"event_type"`
	OrderID    string        `json:"order_id"`
	ProductID  string        `json:"product_id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     SaleStatus    `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// DedupeKey identifies an event for idempotent processing: the same order
// and event type from the same source is handled at most once.
func (e SaleEvent) DedupeKey() string {
	return string(e.Source) + ":" + e.OrderID + ":" + e.EventType
}
