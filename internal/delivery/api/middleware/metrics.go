package middleware

import (
	"time"

	sharedmiddleware "containerview/internal/delivery/middleware"
	"containerview/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records per-route request counts, latency and in-flight requests.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the HTTP instrumentation middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle labels requests by route template to keep label cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.TrackInFlight()
		defer done()

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = sharedmiddleware.StatusOf(err)
		}

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		m.metrics.ObserveHTTP(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
