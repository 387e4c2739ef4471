package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RedirectsBuiltTotal counts signed redirects constructed per gateway variant.
	RedirectsBuiltTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kashier",
			Subsystem: "checkout",
			Name:      "redirects_built_total",
			Help:      "Signed payment redirects constructed, by gateway variant",
		},
		[]string{"gateway"},
	)

	// NotificationsTotal counts processor notifications normalized per gateway and outcome.
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kashier",
			Subsystem: "webhook",
			Name:      "notifications_total",
			Help:      "Processor payment notifications received, by gateway variant and normalized status",
		},
		[]string{"gateway", "status"},
	)
)

func init() {
	Registry.MustRegister(RedirectsBuiltTotal, NotificationsTotal)
}
