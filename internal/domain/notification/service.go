package notification

import (
	"context"

	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
	"github.com/Khaled152/tutor-kashier-integration/pkg/metrics"
)

// ResultProcessor hands a normalized result to the host.
// Implementations can deliver synchronously or asynchronously.
type ResultProcessor interface {
	ProcessPaymentResult(ctx context.Context, result Result) error
}

// Sink receives a copy of every normalized result for audit purposes.
// Sink failures never affect the acknowledgment.
type Sink interface {
	IndexResult(ctx context.Context, result Result) error
}

// Service normalizes deliveries and fans the result out to the host and the
// audit sink. It always produces a result: the transport-level acknowledgment
// to Kashier must not depend on downstream delivery.
type Service struct {
	verifier  *Verifier
	processor ResultProcessor
	sink      Sink
	log       *logger.Logger
}

// NewService creates a notification service. sink may be nil when auditing is
// not configured.
func NewService(verifier *Verifier, processor ResultProcessor, sink Sink, l *logger.Logger) *Service {
	return &Service{
		verifier:  verifier,
		processor: processor,
		sink:      sink,
		log:       l,
	}
}

// Handle normalizes one delivery and dispatches the result. Delivery and audit
// failures are logged, not returned: the caller still acknowledges Kashier.
func (s *Service) Handle(ctx context.Context, gatewayKey string, in Inbound) Result {
	result := s.verifier.Verify(gatewayKey, in)

	metrics.NotificationsTotal.WithLabelValues(gatewayKey, string(result.Status)).Inc()
	s.log.InfoCtx(ctx, "notification normalized: gateway=%s order_id=%s status=%s transaction_id=%s",
		gatewayKey, result.OrderID, result.Status, result.TransactionID)

	if err := s.processor.ProcessPaymentResult(ctx, result); err != nil {
		s.log.ErrorCtx(ctx, "payment result delivery failed: gateway=%s order_id=%s error=%v",
			gatewayKey, result.OrderID, err)
	}

	if s.sink != nil {
		if err := s.sink.IndexResult(ctx, result); err != nil {
			s.log.ErrorCtx(ctx, "audit sink index failed: gateway=%s order_id=%s error=%v",
				gatewayKey, result.OrderID, err)
		}
	}

	return result
}
