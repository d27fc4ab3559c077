package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/service/queue"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

// SaleApplier is the piece of the sale service the worker needs.
type SaleApplier interface {
	ApplyEvent(ctx context.Context, event domain.SaleEvent) error
}

// WebhookWorker drains the webhook event queue and applies each normalized
// sale event. Messages are deleted only after a successful apply so a crash
// mid-batch redelivers instead of losing events.
type WebhookWorker struct {
	sqsService   *queue.SQSService
	sales        SaleApplier
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewWebhookWorker(
	sqsService *queue.SQSService,
	sales SaleApplier,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *WebhookWorker {
	return &WebhookWorker{
		sqsService:   sqsService,
		sales:        sales,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *WebhookWorker) Start() {
	w.logger.Info("Starting webhook workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *WebhookWorker) Stop() {
	w.logger.Info("Stopping webhook workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All webhook workers stopped")
}

func (w *WebhookWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Webhook worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Webhook worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processEvents(context.Background()); err != nil {
				w.logger.Errorf("Webhook worker %d failed to process events: %v", workerID, err)
			}
		}
	}
}

func (w *WebhookWorker) processEvents(ctx context.Context) error {
	events, err := w.sqsService.ReceiveSaleEvents(ctx, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive events: %w", err)
	}

	for _, received := range events {
		event := received.Event
		w.logger.Infof("Processing %s event %s for order %s", event.Source, event.EventID, event.OrderID)

		if err := w.sales.ApplyEvent(ctx, event); err != nil {
			w.logger.Errorf("Failed to apply event %s: %v", event.EventID, err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, received.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}
