package middleware

import (
	"time"

	"chatter-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records every request against its route template so
// ids in the path do not explode label cardinality.
func MetricsMiddleware(collector metrics.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
