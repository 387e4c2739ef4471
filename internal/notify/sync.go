// Package notify delivers verified payment results to the host application,
// either synchronously over HTTP or asynchronously through Kafka.
package notify

import (
	"context"
	"fmt"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/notification"
	"github.com/Khaled152/tutor-kashier-integration/internal/hostclient"
	"github.com/Khaled152/tutor-kashier-integration/internal/shared/dto"
	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
)

// SyncProcessor pushes payment results straight to the host over HTTP.
type SyncProcessor struct {
	client hostclient.Client
	logger *logger.Logger
}

func NewSyncProcessor(l *logger.Logger, client hostclient.Client) *SyncProcessor {
	return &SyncProcessor{
		client: client,
		logger: l,
	}
}

// ProcessPaymentResult implements notification.ResultProcessor.
func (p *SyncProcessor) ProcessPaymentResult(ctx context.Context, res notification.Result) error {
	req := resultRequest(res)

	if err := p.client.SendPaymentResult(ctx, req); err != nil {
		return fmt.Errorf("send payment result: %w", err)
	}

	p.logger.InfoCtx(ctx, "Payment result delivered: order_id=%s status=%s", res.OrderID, res.Status)
	return nil
}

func resultRequest(res notification.Result) dto.PaymentResultRequest {
	return dto.PaymentResultRequest{
		OrderID:       res.OrderID,
		TransactionID: res.TransactionID,
		PaymentMethod: res.PaymentMethod,
		PaymentStatus: string(res.Status),
		Payload:       res.Payload,
	}
}
