// Package opensearch stores an audit trail of verified webhook notifications.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/notification"
)

var _ notification.Sink = (*AuditSink)(nil)

// AuditSink indexes every verified notification so support can trace what the
// gateway actually sent for a given order.
type AuditSink struct {
	client *opensearch.Client
	index  string
}

func NewAuditSink(ctx context.Context, urls []string, index string) (*AuditSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &AuditSink{client: client, index: index}

	// Ensure index exists with minimal mapping.
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *AuditSink) ensureIndex(ctx context.Context) error {
	// HEAD /{index}
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil // already exists
	}
	// Create index with a simple mapping.
	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":       map[string]any{"type": "keyword"},
				"order_id":       map[string]any{"type": "keyword"},
				"transaction_id": map[string]any{"type": "keyword"},
				"payment_method": map[string]any{"type": "keyword"},
				"status":         map[string]any{"type": "keyword"},
				"received_at":    map[string]any{"type": "date"},
				"payload":        map[string]any{"type": "object", "enabled": true},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// internal doc stored in OpenSearch
type osNotificationDoc struct {
	EventID       string            `json:"event_id"`
	OrderID       string            `json:"order_id"`
	TransactionID string            `json:"transaction_id,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	Payload       map[string]string `json:"payload,omitempty"`
	ReceivedAt    time.Time         `json:"received_at"`
}

// IndexResult implements notification.Sink.
func (s *AuditSink) IndexResult(ctx context.Context, res notification.Result) error {
	doc := osNotificationDoc{
		EventID:       uuid.NewString(),
		OrderID:       res.OrderID,
		TransactionID: res.TransactionID,
		PaymentMethod: res.PaymentMethod,
		Status:        string(res.Status),
		Payload:       res.Payload,
		ReceivedAt:    time.Now().UTC(),
	}
	payload, _ := json.Marshal(doc)

	ir, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(doc.EventID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index notification: %w", err)
	}
	defer ir.Body.Close()
	if ir.IsError() {
		return fmt.Errorf("index notification error: %s", ir.String())
	}
	return nil
}
