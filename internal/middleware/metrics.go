package middleware

import (
	"strconv"

	"github.com/SscSPs/corp_portal/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that are not counted.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MetricsMiddleware counts requests per route template, method and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if pathsToSkip[route] {
			return
		}
		metrics.RequestCounter.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
