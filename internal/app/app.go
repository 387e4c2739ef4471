// Package app wires configuration, storage, delivery and the HTTP surface.
package app

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Khaled152/tutor-kashier-integration/config"
	"github.com/Khaled152/tutor-kashier-integration/internal/controller/rest"
	"github.com/Khaled152/tutor-kashier-integration/internal/controller/rest/handlers"
	"github.com/Khaled152/tutor-kashier-integration/internal/domain/checkout"
	"github.com/Khaled152/tutor-kashier-integration/internal/domain/notification"
	"github.com/Khaled152/tutor-kashier-integration/internal/external/kafka"
	"github.com/Khaled152/tutor-kashier-integration/internal/external/opensearch"
	"github.com/Khaled152/tutor-kashier-integration/internal/hostclient"
	"github.com/Khaled152/tutor-kashier-integration/internal/notify"
	settings_repo "github.com/Khaled152/tutor-kashier-integration/internal/repo/settings"
	"github.com/Khaled152/tutor-kashier-integration/pkg/health"
	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
	"github.com/Khaled152/tutor-kashier-integration/pkg/metrics"
	"github.com/Khaled152/tutor-kashier-integration/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	settingsRepo := settings_repo.NewPgSettingsRepo(pool)

	hostClient := hostclient.NewHTTPClient(hostclient.HTTPClientConfig{
		BaseURL:        cfg.HostBaseURL,
		Timeout:        cfg.HostClientTimeout,
		RetryAttempts:  cfg.HostClientRetryAttempts,
		RetryBaseDelay: cfg.HostClientRetryBase,
		RetryMaxDelay:  cfg.HostClientRetryMax,
	})
	defer hostClient.Close()

	webhookURL := webhookURLFunc(cfg)

	builder := checkout.NewBuilder(cfg.KashierBaseURL, cfg.EcommercePlatform)
	checkoutService := checkout.NewService(settingsRepo, builder, hostClient, webhookURL, l)

	processor, closeProcessor := newResultProcessor(cfg, l, hostClient)
	defer closeProcessor()
	sink := newAuditSink(ctx, cfg, l)

	verifier := notification.NewVerifier(cfg.CheckoutPageURL)
	notificationService := notification.NewService(verifier, processor, sink, l)

	router := rest.NewRouter(
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewWebhookHandler(notificationService),
		handlers.NewCatalogHandler(webhookURL),
		cfg.HostAPIRoot,
	)
	router.SetUp(engine)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(healthRegistry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		l.Info("Starting HTTP server: port=%d notify_mode=%s", cfg.Port, cfg.NotifyMode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("HTTP server shutdown: error=%v", err)
	}
}

// webhookURLFunc builds the externally visible webhook endpoint for a variant.
// Merchants register this URL in the Kashier dashboard.
func webhookURLFunc(cfg config.Config) checkout.WebhookURLFunc {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	root := strings.Trim(cfg.HostAPIRoot, "/")
	return func(gatewayKey string) string {
		return fmt.Sprintf("%s/%s/ecommerce-webhook/%s", base, root, gatewayKey)
	}
}

func newResultProcessor(cfg config.Config, l *logger.Logger, hostClient hostclient.Client) (notification.ResultProcessor, func()) {
	if cfg.NotifyMode == "kafka" {
		l.Info("Notify mode: kafka - publishing payment results to %s", cfg.KafkaResultsTopic)
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaResultsTopic)
		closeFn := func() {
			if err := publisher.Close(); err != nil {
				l.Error("Kafka publisher close: error=%v", err)
			}
		}
		return notify.NewAsyncProcessor(l, publisher), closeFn
	}

	l.Info("Notify mode: sync - delivering payment results over HTTP")
	return notify.NewSyncProcessor(l, hostClient), func() {}
}

func newAuditSink(ctx context.Context, cfg config.Config, l *logger.Logger) notification.Sink {
	if len(cfg.OpensearchUrls) == 0 {
		return nil
	}

	sink, err := opensearch.NewAuditSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexNotifications)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - opensearch.NewAuditSink: %w", err))
	}
	return sink
}
