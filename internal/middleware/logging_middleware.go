package middleware

import (
	"net/http"
	"time"

	"chatter-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware writes one access line per request. Client errors log at
// warn and server errors at error so they stand out from normal traffic.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		entry := log.WithContext(c.Request.Context()).Logger
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request", fields...)
		case status >= http.StatusBadRequest:
			entry.Warn("request", fields...)
		default:
			entry.Info("request", fields...)
		}
	}
}
