package middleware

import (
	"github.com/gin-gonic/gin"

	"veritas/internal/pkg/ctxutil"
	"veritas/internal/pkg/id"
)

const (
	// RequestIDHeader 请求ID头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin.Context 中的请求ID键
	RequestIDKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID 请求ID中间件
// 沿用调用方传入的 X-Request-ID，没有时生成新的，并注入到 request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = id.New()
		}

		c.Set(RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
