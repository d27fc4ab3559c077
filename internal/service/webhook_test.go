package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type mockEventDeduper struct {
	mock.Mock
}

func (m *mockEventDeduper) Acquire(ctx context.Context, key, eventID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, eventID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventDeduper) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type mockSaleEventQueue struct {
	mock.Mock
}

func (m *mockSaleEventQueue) SendSaleEvent(ctx context.Context, event domain.SaleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockPayloadArchiver struct {
	mock.Mock
}

func (m *mockPayloadArchiver) Archive(ctx context.Context, source domain.WebhookSource, eventID string, payload []byte) error {
	args := m.Called(ctx, source, eventID, payload)
	return args.Error(0)
}

func TestProcess_UnsupportedSource(t *testing.T) {
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, nil, nil, nil, logger.NewNop())

	_, err := svc.Process(context.Background(), "stripe", []byte("{}"), "sig")
	assert.ErrorIs(t, err, ErrUnsupportedWebhookSource)
}

func TestProcess_InvalidSignature(t *testing.T) {
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, nil, nil, nil, logger.NewNop())

	body, _ := json.Marshal(kiwifyPayload(dto.KiwifyOrderPaid))

	_, err := svc.Process(context.Background(), "kiwify", body, signBody(body, "wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestProcess_MalformedPayloadRejectedBeforeQueueing(t *testing.T) {
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceHotmart: NewHotmartStrategy("secret"),
	}, nil, nil, nil, logger.NewNop())

	body := []byte(`{"id":"","event":"PURCHASE_APPROVED"}`)

	_, err := svc.Process(context.Background(), "hotmart", body, signBody(body, "secret"))
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestProcess_AcceptedEventEnqueued(t *testing.T) {
	dedupe := new(mockEventDeduper)
	queue := new(mockSaleEventQueue)
	archiver := new(mockPayloadArchiver)
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, dedupe, queue, archiver, logger.NewNop())

	body, _ := json.Marshal(kiwifyPayload(dto.KiwifyOrderPaid))

	dedupe.On("Acquire", mock.Anything, mock.Anything, mock.Anything, 24*time.Hour).Return(true, nil)
	archiver.On("Archive", mock.Anything, domain.WebhookSourceKiwify, mock.Anything, body).Return(nil)
	queue.On("SendSaleEvent", mock.Anything, mock.AnythingOfType("domain.SaleEvent")).Return(nil)

	event, err := svc.Process(context.Background(), "kiwify", body, signBody(body, "secret"))

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, domain.SaleStatusCompleted, event.Status)
	queue.AssertExpectations(t)
	dedupe.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestProcess_DuplicateDeliveryRejected(t *testing.T) {
	dedupe := new(mockEventDeduper)
	queue := new(mockSaleEventQueue)
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, dedupe, queue, new(mockPayloadArchiver), logger.NewNop())

	body, _ := json.Marshal(kiwifyPayload(dto.KiwifyOrderPaid))

	// second identical delivery: the key is already held
	dedupe.On("Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.Process(context.Background(), "kiwify", body, signBody(body, "secret"))

	assert.ErrorIs(t, err, ErrDuplicateWebhookEvent)
	queue.AssertNotCalled(t, "SendSaleEvent", mock.Anything, mock.Anything)
}

func TestProcess_ReleasesDedupeKeyWhenEnqueueFails(t *testing.T) {
	dedupe := new(mockEventDeduper)
	queue := new(mockSaleEventQueue)
	archiver := new(mockPayloadArchiver)
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, dedupe, queue, archiver, logger.NewNop())

	body, _ := json.Marshal(kiwifyPayload(dto.KiwifyOrderPaid))

	var claimedKey string
	dedupe.On("Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { claimedKey = args.String(1) }).
		Return(true, nil)
	archiver.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	queue.On("SendSaleEvent", mock.Anything, mock.Anything).Return(errors.New("sqs unavailable"))
	dedupe.On("Release", mock.Anything, mock.MatchedBy(func(key string) bool { return key == claimedKey })).Return(nil)

	_, err := svc.Process(context.Background(), "kiwify", body, signBody(body, "secret"))

	require.Error(t, err)
	dedupe.AssertCalled(t, "Release", mock.Anything, claimedKey)
}

func TestProcess_ArchiveFailureDoesNotRejectEvent(t *testing.T) {
	dedupe := new(mockEventDeduper)
	queue := new(mockSaleEventQueue)
	archiver := new(mockPayloadArchiver)
	svc := NewWebhookService(map[domain.WebhookSource]WebhookStrategy{
		domain.WebhookSourceKiwify: NewKiwifyStrategy("secret"),
	}, dedupe, queue, archiver, logger.NewNop())

	body, _ := json.Marshal(kiwifyPayload(dto.KiwifyOrderPaid))

	dedupe.On("Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	archiver.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("s3 down"))
	queue.On("SendSaleEvent", mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Process(context.Background(), "kiwify", body, signBody(body, "secret"))

	require.NoError(t, err)
	assert.NotNil(t, event)
}
