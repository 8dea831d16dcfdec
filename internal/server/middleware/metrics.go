package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"veritas/internal/pkg/metrics"
)

// Metrics Prometheus 指标中间件
// path 使用路由模板，未匹配的路由统一记为 unmatched
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
