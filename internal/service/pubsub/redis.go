package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

const salesChannel = "sales:events"

// RedisPubSub fans processed sales out to live subscribers. The worker
// publishes after applying an event; the WebSocket hub subscribes.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscriber   *redis.PubSub
	subscriberMu sync.Mutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client: client,
		logger: logger,
	}
}

// Publish pushes a processed sale onto the shared channel.
func (ps *RedisPubSub) Publish(ctx context.Context, sale *dto.SaleResponse) error {
	message, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("failed to marshal sale: %w", err)
	}

	if err := ps.client.Publish(ctx, salesChannel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", salesChannel, err)
	}

	return nil
}

// Subscribe starts delivering published sales to the callback until ctx is
// canceled. A second call while a subscription is live is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, callback func(*dto.SaleResponse)) error {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if ps.subscriber != nil {
		ps.logger.Infof("Already subscribed to channel: %s", salesChannel)
		return nil
	}

	pubsub := ps.client.Subscribe(ctx, salesChannel)
	ps.subscriber = pubsub

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for channel: %s", salesChannel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			ps.subscriber = nil
			ps.subscriberMu.Unlock()
		}()

		ps.consume(ctx, pubsub.Channel(), callback)
	}()

	ps.logger.Infof("Subscribed to channel: %s", salesChannel)
	return nil
}

// consume delivers messages until the context is canceled or the channel is
// closed. Close() shuts the channel, so a receive can fail mid-shutdown; a
// nil message must not be decoded.
func (ps *RedisPubSub) consume(ctx context.Context, ch <-chan *redis.Message, callback func(*dto.SaleResponse)) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var sale dto.SaleResponse
			if err := json.Unmarshal([]byte(msg.Payload), &sale); err != nil {
				ps.logger.Errorf("Failed to unmarshal sale from channel %s: %v", salesChannel, err)
				continue
			}
			callback(&sale)

		case <-ctx.Done():
			return
		}
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if ps.subscriber != nil {
		ps.subscriber.Close()
		ps.subscriber = nil
		ps.logger.Infof("Closed subscription for channel: %s", salesChannel)
	}
}
