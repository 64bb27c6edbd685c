package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Inbound updates by kind (command/callback/text).",
		},
		[]string{"kind"},
	)

	repliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_replies_total",
			Help: "Terminal replies by shape (photo/text/error).",
		},
		[]string{"shape"},
	)

	variantFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affiliate_variant_failures_total",
			Help: "Affiliate link generation failures per campaign variant.",
		},
		[]string{"variant"},
	)

	externalCallLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_latency_ms",
			Help:    "External service call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"target", "success"},
	)
)

func IncUpdate(kind string) {
	updatesTotal.WithLabelValues(kind).Inc()
}

func IncReplyShape(shape string) {
	repliesTotal.WithLabelValues(shape).Inc()
}

func IncVariantFailure(variant string) {
	variantFailures.WithLabelValues(variant).Inc()
}

func ObserveExternalCall(target string, ms float64, success bool) {
	label := "false"
	if success {
		label = "true"
	}
	externalCallLatencyMs.WithLabelValues(target, label).Observe(ms)
}
