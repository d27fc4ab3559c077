package dto

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Kiwify delivery enums. Values come from the provider's webhook docs.
type KiwifyOrderStatus string

const (
	KiwifyOrderPaid           KiwifyOrderStatus = "paid"
	KiwifyOrderWaitingPayment KiwifyOrderStatus = "waiting_payment"
	KiwifyOrderRefused        KiwifyOrderStatus = "refused"
	KiwifyOrderRefunded       KiwifyOrderStatus = "refunded"
	KiwifyOrderChargedback    KiwifyOrderStatus = "chargedback"
)

func (s KiwifyOrderStatus) valid() bool {
	switch s {
	case KiwifyOrderPaid, KiwifyOrderWaitingPayment, KiwifyOrderRefused,
		KiwifyOrderRefunded, KiwifyOrderChargedback:
		return true
	}
	return false
}

type KiwifyPaymentMethod string

const (
	KiwifyPaymentCreditCard KiwifyPaymentMethod = "credit_card"
	KiwifyPaymentBoleto     KiwifyPaymentMethod = "boleto"
	KiwifyPaymentPix        KiwifyPaymentMethod = "pix"
)

func (m KiwifyPaymentMethod) valid() bool {
	switch m {
	case KiwifyPaymentCreditCard, KiwifyPaymentBoleto, KiwifyPaymentPix:
		return true
	}
	return false
}

type KiwifyProductType string

const (
	KiwifyProductClub       KiwifyProductType = "club"
	KiwifyProductPhysical   KiwifyProductType = "physical"
	KiwifyProductPayment    KiwifyProductType = "payment"
	KiwifyProductDigital    KiwifyProductType = "digital"
	KiwifyProductEvent      KiwifyProductType = "event"
	KiwifyProductMembership KiwifyProductType = "membership"
)

func (t KiwifyProductType) valid() bool {
	switch t {
	case KiwifyProductClub, KiwifyProductPhysical, KiwifyProductPayment,
		KiwifyProductDigital, KiwifyProductEvent, KiwifyProductMembership:
		return true
	}
	return false
}

type KiwifyEventType string

const (
	KiwifyEventBilletCreated        KiwifyEventType = "billet_created"
	KiwifyEventPixCreated           KiwifyEventType = "pix_created"
	KiwifyEventOrderRejected        KiwifyEventType = "order_rejected"
	KiwifyEventOrderApproved        KiwifyEventType = "order_approved"
	KiwifyEventOrderRefunded        KiwifyEventType = "order_refunded"
	KiwifyEventChargeback           KiwifyEventType = "chargeback"
	KiwifyEventSubscriptionCanceled KiwifyEventType = "subscription_canceled"
	KiwifyEventSubscriptionLate     KiwifyEventType = "subscription_late"
	KiwifyEventSubscriptionRenewed  KiwifyEventType = "subscription_renewed"
)

func (e KiwifyEventType) valid() bool {
	switch e {
	case KiwifyEventBilletCreated, KiwifyEventPixCreated, KiwifyEventOrderRejected,
		KiwifyEventOrderApproved, KiwifyEventOrderRefunded, KiwifyEventChargeback,
		KiwifyEventSubscriptionCanceled, KiwifyEventSubscriptionLate,
		KiwifyEventSubscriptionRenewed:
		return true
	}
	return false
}

type KiwifyProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

type KiwifyCustomer struct {
	FullName  string  `json:"full_name"`
	FirstName string  `json:"first_name"`
	Email     string  `json:"email"`
	Mobile    *string `json:"mobile"`
	CPF       *string `json:"CPF"`
	IP        string  `json:"ip"`
	Country   *string `json:"country"`
}

type KiwifyCommissionedStore struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	CustomName      string `json:"custom_name"`
	Email           string `json:"email"`
	Value           string `json:"value"`
	AffiliateID     string `json:"affiliate_id,omitempty"`
	ProductID       string `json:"product_id,omitempty"`
	ProductName     string `json:"product_name,omitempty"`
	ProductOwnerID  string `json:"product_owner_id,omitempty"`
	CommissionOwner string `json:"commission_owner,omitempty"`
}

// KiwifyCommissions carries monetary amounts as strings, matching the wire
// format.
type KiwifyCommissions struct {
	ChargeAmount             string                    `json:"charge_amount"`
	Currency                 string                    `json:"currency"`
	ProductBasePrice         string                    `json:"product_base_price"`
	ProductBasePriceCurrency string                    `json:"product_base_price_currency"`
	KiwifyFee                string                    `json:"kiwify_fee"`
	KiwifyFeeCurrency        string                    `json:"kiwify_fee_currency"`
	CommissionedStores       []KiwifyCommissionedStore `json:"commissioned_stores"`
	MyCommission             string                    `json:"my_commission"`
	FundsStatus              any                       `json:"funds_status"`
	EstimatedDepositDate     *string                   `json:"estimated_deposit_date"`
	DepositDate              *string                   `json:"deposit_date"`
}

type KiwifyTrackingParameters struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

type KiwifyCustomerAccess struct {
	HasAccess    bool   `json:"has_access"`
	ActivePeriod bool   `json:"active_period"`
	AccessUntil  string `json:"access_until"`
}

type KiwifyPlan struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Frequency  string `json:"frequency"`
	QtyCharges int    `json:"qty_charges"`
}

type KiwifyCompletedCharge struct {
	OrderID         string  `json:"order_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Installments    int     `json:"installments"`
	CardType        string  `json:"card_type"`
	CardLastDigits  string  `json:"card_last_digits"`
	CardFirstDigits string  `json:"card_first_digits"`
	CreatedAt       string  `json:"created_at"`
}

type KiwifyFutureCharge struct {
	ChargeDate string `json:"charge_date"`
}

type KiwifyCharges struct {
	Completed []KiwifyCompletedCharge `json:"completed"`
	Future    []KiwifyFutureCharge    `json:"future"`
}

type KiwifySubscription struct {
	StartDate      string               `json:"start_date"`
	NextPayment    string               `json:"next_payment"`
	Status         string               `json:"status"`
	CustomerAccess KiwifyCustomerAccess `json:"customer_access"`
	Plan           KiwifyPlan           `json:"plan"`
	Charges        KiwifyCharges        `json:"charges"`
}

// KiwifyWebhookPayload is the full delivery shape Kiwify posts for every
// order event.
type KiwifyWebhookPayload struct {
	OrderID             string                   `json:"order_id"`
	OrderRef            string                   `json:"order_ref"`
	OrderStatus         KiwifyOrderStatus        `json:"order_status"`
	PaymentMethod       KiwifyPaymentMethod      `json:"payment_method"`
	StoreID             string                   `json:"store_id"`
	PaymentMerchantID   string                   `json:"payment_merchant_id"`
	Installments        int                      `json:"installments"`
	CardType            string                   `json:"card_type"`
	CardLast4Digits     string                   `json:"card_last4digits"`
	CardRejectionReason *string                  `json:"card_rejection_reason"`
	PixCode             *string                  `json:"pix_code"`
	PixExpiration       *string                  `json:"pix_expiration"`
	BoletoURL           *string                  `json:"boleto_URL"`
	BoletoBarcode       *string                  `json:"boleto_barcode"`
	BoletoExpiryDate    *string                  `json:"boleto_expiry_date"`
	SaleType            string                   `json:"sale_type"`
	ApprovedDate        string                   `json:"approved_date"`
	CreatedAt           string                   `json:"created_at"`
	UpdatedAt           string                   `json:"updated_at"`
	WebhookEventType    KiwifyEventType          `json:"webhook_event_type"`
	ProductType         KiwifyProductType        `json:"product_type"`
	Product             KiwifyProduct            `json:"Product"`
	Customer            KiwifyCustomer           `json:"Customer"`
	Commissions         KiwifyCommissions        `json:"Commissions"`
	TrackingParameters  KiwifyTrackingParameters `json:"TrackingParameters"`
	Subscription        *KiwifySubscription      `json:"Subscription"`
	SubscriptionID      string                   `json:"subscription_id"`
	CheckoutLink        string                   `json:"checkout_link"`
	AccessURL           string                   `json:"access_url"`
	SmartInstallment    json.RawMessage          `json:"SmartInstallment"`
	EventTickets        json.RawMessage          `json:"event_tickets"`
	EventBatch          json.RawMessage          `json:"event_batch"`
}

// Validate checks the payload field by field and reports every problem at
// once so a malformed delivery is diagnosable from a single response.
func (p *KiwifyWebhookPayload) Validate() error {
	var problems []string

	if _, err := uuid.Parse(p.OrderID); err != nil {
		problems = append(problems, "order_id must be a UUID")
	}
	if p.OrderRef == "" {
		problems = append(problems, "order_ref is required")
	}
	if !p.OrderStatus.valid() {
		problems = append(problems, fmt.Sprintf("order_status %q is not a known status", p.OrderStatus))
	}
	if !p.PaymentMethod.valid() {
		problems = append(problems, fmt.Sprintf("payment_method %q is not a known method", p.PaymentMethod))
	}
	if p.StoreID == "" {
		problems = append(problems, "store_id is required")
	}
	if !p.ProductType.valid() {
		problems = append(problems, fmt.Sprintf("product_type %q is not a known type", p.ProductType))
	}
	if p.WebhookEventType != "" && !p.WebhookEventType.valid() {
		problems = append(problems, fmt.Sprintf("webhook_event_type %q is not a known event", p.WebhookEventType))
	}
	if _, err := uuid.Parse(p.Product.ProductID); err != nil {
		problems = append(problems, "Product.product_id must be a UUID")
	}
	if p.Product.ProductName == "" {
		problems = append(problems, "Product.product_name is required")
	}
	if _, err := mail.ParseAddress(p.Customer.Email); err != nil {
		problems = append(problems, "Customer.email must be a valid email")
	}
	if p.Customer.FullName == "" {
		problems = append(problems, "Customer.full_name is required")
	}
	if p.Commissions.ChargeAmount == "" {
		problems = append(problems, "Commissions.charge_amount is required")
	}
	if p.SubscriptionID != "" {
		if _, err := uuid.Parse(p.SubscriptionID); err != nil {
			problems = append(problems, "subscription_id must be a UUID")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid kiwify payload: %s", strings.Join(problems, "; "))
	}
	return nil
}
