package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
)

func hotmartPayload(event dto.HotmartEvent) dto.HotmartWebhookPayload {
	return dto.HotmartWebhookPayload{
		ID:           "evt-42",
		Event:        event,
		Version:      "2.0.0",
		CreationDate: 1742484645000,
		Data: dto.HotmartData{
			Product: dto.HotmartProduct{ID: 12345, Name: "Sales Masterclass"},
			Buyer:   dto.HotmartBuyer{Email: "joao@example.com", Name: "Joao Souza"},
			Purchase: dto.HotmartPurchase{
				Transaction: "HP0001",
				Status:      "APPROVED",
				Price:       dto.HotmartPrice{Value: 297.00, CurrencyValue: "BRL"},
			},
		},
	}
}

func TestHotmartNormalize(t *testing.T) {
	strategy := NewHotmartStrategy("secret")

	t.Run("approved purchase becomes completed sale", func(t *testing.T) {
		body, _ := json.Marshal(hotmartPayload(dto.HotmartEventPurchaseApproved))

		event, err := strategy.Normalize(body)
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.Equal(t, "evt-42", event.EventID)
		assert.Equal(t, domain.WebhookSourceHotmart, event.Source)
		assert.Equal(t, "HP0001", event.OrderID)
		assert.Equal(t, "12345", event.ProductID)
		assert.Equal(t, "joao@example.com", event.CustomerID)
		assert.Equal(t, domain.SaleStatusCompleted, event.Status)
		assert.InDelta(t, 297.00, event.Amount, 0.001)
		assert.Equal(t, time.UnixMilli(1742484645000).UTC(), event.OccurredAt)
	})

	t.Run("complete purchase becomes completed sale", func(t *testing.T) {
		body, _ := json.Marshal(hotmartPayload(dto.HotmartEventPurchaseComplete))

		event, err := strategy.Normalize(body)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, domain.SaleStatusCompleted, event.Status)
	})

	t.Run("refund and chargeback become refunds", func(t *testing.T) {
		for _, evt := range []dto.HotmartEvent{dto.HotmartEventPurchaseRefunded, dto.HotmartEventPurchaseChargeback} {
			body, _ := json.Marshal(hotmartPayload(evt))

			event, err := strategy.Normalize(body)
			require.NoError(t, err)
			require.NotNil(t, event)
			assert.Equal(t, domain.SaleStatusRefunded, event.Status)
		}
	})

	t.Run("cancellations and expirations carry no outcome", func(t *testing.T) {
		for _, evt := range []dto.HotmartEvent{dto.HotmartEventPurchaseCanceled, dto.HotmartEventPurchaseExpired} {
			body, _ := json.Marshal(hotmartPayload(evt))

			event, err := strategy.Normalize(body)
			assert.NoError(t, err)
			assert.Nil(t, event)
		}
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		payload := hotmartPayload("PURCHASE_APPROVED")
		payload.Event = "SUBSCRIPTION_CANCELLATION"
		body, _ := json.Marshal(payload)

		_, err := strategy.Normalize(body)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("rejects missing transaction", func(t *testing.T) {
		payload := hotmartPayload(dto.HotmartEventPurchaseApproved)
		payload.Data.Purchase.Transaction = ""
		body, _ := json.Marshal(payload)

		_, err := strategy.Normalize(body)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
