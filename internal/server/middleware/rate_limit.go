package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"veritas/internal/pkg/cache"
	pkghttp "veritas/internal/pkg/http"
)

const rateLimitWindow = time.Second

// WindowCounter 固定窗口计数器
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit 按客户端 IP 限流（每秒 qps 次）
// 计数器不可用时放行请求
func RateLimit(counter WindowCounter, qps int) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := counter.IncrWindow(c.Request.Context(), cache.RateLimitKey(c.ClientIP()), rateLimitWindow)
		if err != nil {
			log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		remaining := int64(qps) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(qps))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(qps) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				pkghttp.NewErrorResponse(42901, "rate_limited", "Too many requests, please retry later"))
			return
		}
		c.Next()
	}
}
