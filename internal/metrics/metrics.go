// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artfolio_http_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	SubscriptionEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_subscription_emails_total",
			Help: "Subscription emails by kind and outcome",
		},
		[]string{"kind", "result"},
	)
)

// RegisterPool exposes pgx pool usage as gauges.
func RegisterPool(reg prometheus.Registerer, pool *pgxpool.Pool) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "artfolio_db_pool_acquired_conns",
			Help: "Connections currently acquired from the pool",
		}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "artfolio_db_pool_idle_conns",
			Help: "Idle connections in the pool",
		}, func() float64 { return float64(pool.Stat().IdleConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "artfolio_db_pool_total_conns",
			Help: "Total connections in the pool",
		}, func() float64 { return float64(pool.Stat().TotalConns()) }),
	)
}
