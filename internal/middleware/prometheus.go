package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"artfolio/internal/metrics"
)

// PrometheusMetrics records request counts and latencies by route pattern.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/metrics" {
			return next(c)
		}

		metrics.ActiveRequests.Inc()
		defer metrics.ActiveRequests.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// let echo write the status before it is recorded
			c.Error(err)
		}
		duration := time.Since(start).Seconds()

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(duration)

		return nil
	}
}
