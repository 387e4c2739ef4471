package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
	"github.com/Khaled152/tutor-kashier-integration/pkg/metrics"
)

// RenewalSource prepares payment data for subscription renewals. The host owns
// the order model, so renewal data comes from it.
type RenewalSource interface {
	RecurringPaymentData(ctx context.Context, orderID string) (map[string]any, error)
}

// WebhookURLFunc resolves the webhook/return endpoint for a gateway variant.
type WebhookURLFunc func(gatewayKey string) string

// Service orchestrates redirect construction for regular and renewal payments.
type Service struct {
	settings   gateway.Settings
	builder    *Builder
	renewals   RenewalSource
	webhookURL WebhookURLFunc
	log        *logger.Logger
}

func NewService(settings gateway.Settings, builder *Builder, renewals RenewalSource, webhookURL WebhookURLFunc, l *logger.Logger) *Service {
	return &Service{
		settings:   settings,
		builder:    builder,
		renewals:   renewals,
		webhookURL: webhookURL,
		log:        l,
	}
}

// Pay normalizes the host order payload and builds a signed redirect for the
// variant. Configuration problems fail loud before anything is signed.
func (s *Service) Pay(ctx context.Context, gatewayKey string, order map[string]any) (Redirect, error) {
	method, ok := gateway.MethodByKey(gatewayKey)
	if !ok {
		return Redirect{}, fmt.Errorf("%s: %w", gatewayKey, gateway.ErrUnknownGateway)
	}

	creds, err := gateway.ResolveCredentials(ctx, s.settings, gatewayKey)
	if err != nil {
		return Redirect{}, err
	}

	req := NormalizePaymentRequest(order)

	redirect, err := s.builder.Build(creds, method, req, s.webhookURL(gatewayKey), time.Now())
	if err != nil {
		return Redirect{}, err
	}

	metrics.RedirectsBuiltTotal.WithLabelValues(gatewayKey).Inc()
	s.log.InfoCtx(ctx, "payment redirect built: gateway=%s order_ref=%s amount=%s %s mode=%s",
		gatewayKey, redirect.OrderReference, redirect.Amount, redirect.Currency, redirect.Mode)

	return redirect, nil
}

// Renew runs the regular payment flow against host-prepared renewal data.
// There is no stored instrument: a renewal is just a fresh redirect.
func (s *Service) Renew(ctx context.Context, gatewayKey, orderID string) (Redirect, error) {
	if orderID == "" {
		return Redirect{}, fmt.Errorf("empty order id: %w", ErrRenewalUnavailable)
	}

	data, err := s.renewals.RecurringPaymentData(ctx, orderID)
	if err != nil {
		s.log.ErrorCtx(ctx, "renewal data preparation failed: order_id=%s error=%v", orderID, err)
		return Redirect{}, fmt.Errorf("prepare renewal data for order %s: %w", orderID, ErrRenewalUnavailable)
	}
	if len(data) == 0 {
		s.log.ErrorCtx(ctx, "renewal data preparation returned nothing: order_id=%s", orderID)
		return Redirect{}, fmt.Errorf("prepare renewal data for order %s: %w", orderID, ErrRenewalUnavailable)
	}

	return s.Pay(ctx, gatewayKey, data)
}
