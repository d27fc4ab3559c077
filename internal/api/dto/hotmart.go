package dto

import (
	"fmt"
	"net/mail"
	"strings"
)

// Hotmart webhook (v2) event names this service acts on.
type HotmartEvent string

const (
	HotmartEventPurchaseApproved   HotmartEvent = "PURCHASE_APPROVED"
	HotmartEventPurchaseComplete   HotmartEvent = "PURCHASE_COMPLETE"
	HotmartEventPurchaseRefunded   HotmartEvent = "PURCHASE_REFUNDED"
	HotmartEventPurchaseChargeback HotmartEvent = "PURCHASE_CHARGEBACK"
	HotmartEventPurchaseCanceled   HotmartEvent = "PURCHASE_CANCELED"
	HotmartEventPurchaseExpired    HotmartEvent = "PURCHASE_EXPIRED"
)

func (e HotmartEvent) valid() bool {
	switch e {
	case HotmartEventPurchaseApproved, HotmartEventPurchaseComplete,
		HotmartEventPurchaseRefunded, HotmartEventPurchaseChargeback,
		HotmartEventPurchaseCanceled, HotmartEventPurchaseExpired:
		return true
	}
	return false
}

type HotmartProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type HotmartBuyer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type HotmartPrice struct {
	Value         float64 `json:"value"`
	CurrencyValue string  `json:"currency_value"`
}

type HotmartPurchase struct {
	Transaction  string       `json:"transaction"`
	Status       string       `json:"status"`
	ApprovedDate int64        `json:"approved_date"`
	OrderDate    int64        `json:"order_date"`
	Price        HotmartPrice `json:"price"`
}

type HotmartData struct {
	Product  HotmartProduct  `json:"product"`
	Buyer    HotmartBuyer    `json:"buyer"`
	Purchase HotmartPurchase `json:"purchase"`
}

// HotmartWebhookPayload is the v2 delivery envelope Hotmart posts for
// purchase lifecycle events.
type HotmartWebhookPayload struct {
	ID           string       `json:"id"`
	Event        HotmartEvent `json:"event"`
	Version      string       `json:"version"`
	CreationDate int64        `json:"creation_date"`
	Data         HotmartData  `json:"data"`
}

func (p *HotmartWebhookPayload) Validate() error {
	var problems []string

	if p.ID == "" {
		problems = append(problems, "id is required")
	}
	if !p.Event.valid() {
		problems = append(problems, fmt.Sprintf("event %q is not a known event", p.Event))
	}
	if p.Data.Purchase.Transaction == "" {
		problems = append(problems, "data.purchase.transaction is required")
	}
	if p.Data.Purchase.Price.Value < 0 {
		problems = append(problems, "data.purchase.price.value must be non-negative")
	}
	if p.Data.Product.ID == 0 {
		problems = append(problems, "data.product.id is required")
	}
	if _, err := mail.ParseAddress(p.Data.Buyer.Email); err != nil {
		problems = append(problems, "data.buyer.email must be a valid email")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid hotmart payload: %s", strings.Join(problems, "; "))
	}
	return nil
}
