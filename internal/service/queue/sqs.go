package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/domain"
)

// ReceivedEvent pairs a decoded sale event with the receipt handle needed to
// delete it after successful processing.
type ReceivedEvent struct {
	Event         domain.SaleEvent
	ReceiptHandle *string
}

// SQSService moves normalized sale events between the webhook endpoint and
// the background worker.
type SQSService struct {
	client          *sqs.Client
	webhookQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		webhookQueueURL: config.WebhookQueueURL,
	}
}

func (s *SQSService) SendSaleEvent(ctx context.Context, event domain.SaleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sale event: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    aws.String(s.webhookQueueURL),
	}

	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send sale event: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveSaleEvents(ctx context.Context, maxMessages int32, waitTimeSeconds int32) ([]ReceivedEvent, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.webhookQueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var events []ReceivedEvent
	for _, msg := range output.Messages {
		var event domain.SaleEvent
		if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sale event: %w", err)
		}
		events = append(events, ReceivedEvent{
			Event:         event,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return events, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.webhookQueueURL),
		ReceiptHandle: receiptHandle,
	}

	if _, err := s.client.DeleteMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
