package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	eventsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_events_total",
			Help: "Registered events",
		},
	)

	stakedReservations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_staked_reservations",
			Help: "Reservations currently holding escrowed funds",
		},
	)

	settledReservations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_settled_reservations",
			Help: "Reservations settled by check-in",
		},
	)

	escrowTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_escrow_balance_total",
			Help: "Escrowed funds across all events",
		},
	)
)

func TrackHTTPRequest(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}
