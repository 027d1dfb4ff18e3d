package server

import (
	"strconv"
	"time"

	"github.com/benyxxxxx/globalconnector-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records the request counter and latency histogram keyed by
// route template, not raw path, to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
