package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

func runConsume(ch <-chan *redis.Message, callback func(*dto.SaleResponse)) chan struct{} {
	ps := NewRedisPubSub(nil, logger.NewNop())
	done := make(chan struct{})
	go func() {
		ps.consume(context.Background(), ch, callback)
		close(done)
	}()
	return done
}

func TestConsume_DeliversSales(t *testing.T) {
	ch := make(chan *redis.Message, 1)
	received := make(chan *dto.SaleResponse, 1)
	done := runConsume(ch, func(sale *dto.SaleResponse) { received <- sale })

	payload, _ := json.Marshal(dto.SaleResponse{ID: "sale-1", OrderID: "order-1", Status: "completed"})
	ch <- &redis.Message{Channel: salesChannel, Payload: string(payload)}

	select {
	case sale := <-received:
		assert.Equal(t, "sale-1", sale.ID)
		assert.Equal(t, "completed", sale.Status)
	case <-time.After(time.Second):
		t.Fatal("sale was not delivered")
	}

	close(ch)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after channel close")
	}
}

func TestConsume_StopsOnClosedChannel(t *testing.T) {
	ch := make(chan *redis.Message)
	done := runConsume(ch, func(*dto.SaleResponse) { t.Error("no message was published") })

	// Close() closing the subscription mid-shutdown must end the loop, not
	// deliver a nil message.
	close(ch)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after channel close")
	}
}

func TestConsume_SkipsMalformedPayload(t *testing.T) {
	ch := make(chan *redis.Message, 2)
	received := make(chan *dto.SaleResponse, 1)
	done := runConsume(ch, func(sale *dto.SaleResponse) { received <- sale })

	ch <- &redis.Message{Channel: salesChannel, Payload: "not-json"}
	payload, _ := json.Marshal(dto.SaleResponse{ID: "sale-2"})
	ch <- &redis.Message{Channel: salesChannel, Payload: string(payload)}

	select {
	case sale := <-received:
		require.Equal(t, "sale-2", sale.ID, "malformed message skipped, next one delivered")
	case <-time.After(time.Second):
		t.Fatal("sale was not delivered")
	}

	close(ch)
	<-done
}

func TestConsume_StopsOnContextCancel(t *testing.T) {
	ps := NewRedisPubSub(nil, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan *redis.Message)
	done := make(chan struct{})
	go func() {
		ps.consume(ctx, ch, func(*dto.SaleResponse) {})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after cancel")
	}
}
