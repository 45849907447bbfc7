package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyharbor-dev/crew-roster/internal/metrics"
)

// MetricsMiddleware records the duration of each request, labelled by
// method and route template.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.RequestDuration.WithLabelValues(c.Request().Method, c.Path()).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
