package notification

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
)

// fakeProcessor is a hand mock for the host delivery collaborator.
type fakeProcessor struct {
	last Result
	err  error
}

func (f *fakeProcessor) ProcessPaymentResult(_ context.Context, result Result) error {
	f.last = result
	return f.err
}

type fakeSink struct {
	last Result
	err  error
}

func (f *fakeSink) IndexResult(_ context.Context, result Result) error {
	f.last = result
	return f.err
}

func TestService_Handle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := Inbound{Query: url.Values{
		"merchantOrderId": {"42-1700000000"},
		"paymentStatus":   {"success"},
		"transactionId":   {"T9"},
	}}

	t.Run("dispatches normalized result to processor and sink", func(t *testing.T) {
		// given
		processor := &fakeProcessor{}
		sink := &fakeSink{}
		service := NewService(NewVerifier(testCheckoutPage), processor, sink, logger.New("error"))

		// when
		result := service.Handle(ctx, "kashier_card", in)

		// then
		assert.Equal(t, StatusPaid, result.Status)
		assert.Equal(t, "42", processor.last.OrderID)
		assert.Equal(t, "T9", processor.last.TransactionID)
		assert.Equal(t, "42", sink.last.OrderID)
	})

	t.Run("delivery failure does not change the result", func(t *testing.T) {
		processor := &fakeProcessor{err: errors.New("host unreachable")}
		service := NewService(NewVerifier(testCheckoutPage), processor, nil, logger.New("error"))

		result := service.Handle(ctx, "kashier_card", in)

		assert.Equal(t, StatusPaid, result.Status)
		assert.Equal(t, "42", result.OrderID)
	})

	t.Run("sink failure does not change the result", func(t *testing.T) {
		processor := &fakeProcessor{}
		sink := &fakeSink{err: errors.New("index down")}
		service := NewService(NewVerifier(testCheckoutPage), processor, sink, logger.New("error"))

		result := service.Handle(ctx, "kashier_card", in)

		assert.Equal(t, StatusPaid, result.Status)
	})
}
