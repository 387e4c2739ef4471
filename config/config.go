package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Kashier checkout endpoint. The mode (test/live) is decided per gateway
	// from its stored settings, not here.
	KashierBaseURL string `env:"KASHIER_BASE_URL" envDefault:"https://payments.kashier.io"`

	// PublicBaseURL is this service's externally reachable address, used to
	// build the webhook URLs registered with Kashier.
	PublicBaseURL string `env:"PUBLIC_BASE_URL,required"`

	// HostAPIRoot mirrors the LMS host's REST namespace in webhook paths.
	HostAPIRoot string `env:"HOST_API_ROOT" envDefault:"tutor/v1"`

	// CheckoutPageURL is the host page buyers land on after a browser return.
	CheckoutPageURL string `env:"CHECKOUT_PAGE_URL,required"`

	EcommercePlatform string `env:"ECOMMERCE_PLATFORM" envDefault:"TutorLMS"`

	// Result delivery mode: "sync" (direct host HTTP) or "kafka" (async).
	NotifyMode string `env:"NOTIFY_MODE" envDefault:"sync"`

	// Host application client
	HostBaseURL             string        `env:"HOST_BASE_URL,required"`
	HostClientTimeout       time.Duration `env:"HOST_CLIENT_TIMEOUT" envDefault:"20s"`
	HostClientRetryAttempts int           `env:"HOST_CLIENT_RETRY_ATTEMPTS" envDefault:"3"`
	HostClientRetryBase     time.Duration `env:"HOST_CLIENT_RETRY_BASE" envDefault:"100ms"`
	HostClientRetryMax      time.Duration `env:"HOST_CLIENT_RETRY_MAX" envDefault:"5s"`

	// Kafka configuration
	KafkaBrokers      []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaResultsTopic string   `env:"KAFKA_RESULTS_TOPIC" envDefault:"payments.results"`

	// OpenSearch audit trail, disabled when no addresses are configured.
	OpensearchUrls               []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexNotifications string   `env:"OPENSEARCH_INDEX_NOTIFICATIONS" envDefault:"kashier-notifications"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
