package notify

import (
	"context"
	"fmt"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/notification"
	"github.com/Khaled152/tutor-kashier-integration/internal/messaging"
	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
)

// EventTypePaymentResult is the envelope type for verified payment results.
const EventTypePaymentResult = "payment.result"

// AsyncProcessor publishes payment results to Kafka for the host to consume.
// Messages are keyed by order id so results for one order stay ordered.
type AsyncProcessor struct {
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewAsyncProcessor(l *logger.Logger, publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{
		publisher: publisher,
		logger:    l,
	}
}

// ProcessPaymentResult implements notification.ResultProcessor.
func (p *AsyncProcessor) ProcessPaymentResult(ctx context.Context, res notification.Result) error {
	env, err := messaging.NewEnvelope(res.OrderID, EventTypePaymentResult, resultRequest(res))
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}

	if err := p.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish payment result: %w", err)
	}

	p.logger.InfoCtx(ctx, "Payment result queued: order_id=%s status=%s event_id=%s",
		res.OrderID, res.Status, env.EventID)
	return nil
}
