package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Liveness checks and metric scrapes are constant noise; keep them out of the log.
			path := c.Path()
			if m.logger != nil && path != "/health_check" && path != "/metrics" {
				m.logger.WithFields(logrus.Fields{"method": c.Request().Method, "path": path}).Debug("incoming request")
			}
			return next(c)
		}
	}
}
