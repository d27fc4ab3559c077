package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

// dedupeTTL bounds how long an event key blocks redelivery. Providers retry
// for at most a day.
const dedupeTTL = 24 * time.Hour

// WebhookStrategy is the per-platform handler. Normalize may return
// (nil, nil) for deliveries that carry no sale outcome, e.g. a pix code
// being created.
type WebhookStrategy interface {
	Verify(body []byte, signature string) error
	Normalize(body []byte) (*domain.SaleEvent, error)
}

//go:generate mockery --name SaleEventQueue --output ../mocks
type SaleEventQueue interface {
	SendSaleEvent(ctx context.Context, event domain.SaleEvent) error
}

//go:generate mockery --name PayloadArchiver --output ../mocks
type PayloadArchiver interface {
	Archive(ctx context.Context, source domain.WebhookSource, eventID string, payload []byte) error
}

// EventDeduper claims an event key for idempotent processing. Acquire
// returns false when the key is already held by an earlier delivery.
//
//go:generate mockery --name EventDeduper --output ../mocks
type EventDeduper interface {
	Acquire(ctx context.Context, key, eventID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisDeduper implements EventDeduper on a shared Redis via SETNX.
type RedisDeduper struct {
	client *redis.Client
}

func NewRedisDeduper(client *redis.Client) *RedisDeduper {
	return &RedisDeduper{client: client}
}

func (d *RedisDeduper) Acquire(ctx context.Context, key, eventID string, ttl time.Duration) (bool, error) {
	return d.client.SetNX(ctx, key, eventID, ttl).Result()
}

func (d *RedisDeduper) Release(ctx context.Context, key string) error {
	return d.client.Del(ctx, key).Err()
}

// WebhookService accepts raw deliveries, verifies authenticity, dedupes and
// hands the normalized event to the queue. Actual sale mutation happens in
// the background worker.
type WebhookService struct {
	strategies map[domain.WebhookSource]WebhookStrategy
	dedupe     EventDeduper
	queue      SaleEventQueue
	archiver   PayloadArchiver
	log        *logger.Logger
}

func NewWebhookService(strategies map[domain.WebhookSource]WebhookStrategy, dedupe EventDeduper, queue SaleEventQueue, archiver PayloadArchiver, log *logger.Logger) *WebhookService {
	return &WebhookService{
		strategies: strategies,
		dedupe:     dedupe,
		queue:      queue,
		archiver:   archiver,
		log:        log,
	}
}

// Process runs the full acceptance pipeline for one delivery. The returned
// event is nil when the delivery was valid but carries no sale outcome.
func (s *WebhookService) Process(ctx context.Context, source string, body []byte, signature string) (*domain.SaleEvent, error) {
	strategy, ok := s.strategies[domain.WebhookSource(source)]
	if !ok {
		return nil, ErrUnsupportedWebhookSource
	}

	if err := strategy.Verify(body, signature); err != nil {
		return nil, err
	}

	event, err := strategy.Normalize(body)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	dedupeKey := "webhook:dedupe:" + event.DedupeKey()
	acquired, err := s.dedupe.Acquire(ctx, dedupeKey, event.EventID, dedupeTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to check event idempotency: %w", err)
	}
	if !acquired {
		return nil, ErrDuplicateWebhookEvent
	}

	// Archival is best effort: a storage outage must not reject the sale.
	if err := s.archiver.Archive(ctx, event.Source, event.EventID, body); err != nil {
		s.log.Errorf("Failed to archive webhook payload %s: %v", event.EventID, err)
	}

	if err := s.queue.SendSaleEvent(ctx, *event); err != nil {
		// Release the dedupe key so the provider's retry can get through.
		if delErr := s.dedupe.Release(ctx, dedupeKey); delErr != nil {
			s.log.Errorf("Failed to release dedupe key %s: %v", dedupeKey, delErr)
		}
		return nil, fmt.Errorf("failed to enqueue sale event: %w", err)
	}

	s.log.Infof("Accepted %s webhook event %s for order %s", event.Source, event.EventID, event.OrderID)
	return event, nil
}

// verifySignature checks an HMAC-SHA256 hex digest of the raw body.
func verifySignature(body []byte, signature, secret string) error {
	if signature == "" {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
