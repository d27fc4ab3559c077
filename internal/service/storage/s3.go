package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/domain"
)

// PayloadArchiver keeps the raw body of every accepted webhook delivery in
// S3 so disputed orders can be replayed or audited later.
type PayloadArchiver struct {
	client *s3.Client
	config *config.S3Config
}

func NewPayloadArchiver(client *s3.Client, config *config.S3Config) *PayloadArchiver {
	return &PayloadArchiver{
		client: client,
		config: config,
	}
}

// Archive stores the raw payload under webhooks/<source>/<date>/<eventID>.json.
func (a *PayloadArchiver) Archive(ctx context.Context, source domain.WebhookSource, eventID string, payload []byte) error {
	receivedAt := time.Now().UTC()
	key := fmt.Sprintf("webhooks/%s/%s/%s.json",
		source,
		receivedAt.Format("2006-01-02"),
		eventID)

	contentType := "application/json"
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &a.config.BucketName,
		Key:         &key,
		Body:        bytes.NewReader(payload),
		ContentType: &contentType,
		Metadata: map[string]string{
			"source":      string(source),
			"event-id":    eventID,
			"received-at": receivedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload payload to S3: %w", err)
	}

	return nil
}
