package middleware

import (
	"strconv"
	"time"

	"loan-origination-backend/internal/infrastructure/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latency per route template, so
// /v1/loans/:id stays one series regardless of the id.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}
			start := time.Now()
			metrics.HTTPInFlight.Inc()
			defer metrics.HTTPInFlight.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequests.WithLabelValues(method, path, status).Inc()
			metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
