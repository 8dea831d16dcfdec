package generation

import (
	"github.com/gin-gonic/gin"

	pkghttp "veritas/internal/pkg/http"
	svc "veritas/internal/service/generation"
)

// ErrorResponse 错误响应（所有API共用）
type ErrorResponse = pkghttp.ErrorResponse

// abortWithError 按错误类型返回统一的错误响应
func abortWithError(c *gin.Context, err error) {
	e := svc.AsError(err)
	resp := pkghttp.NewErrorResponse(e.Kind.Code(), string(e.Kind), e.Message)
	resp.Details = e.Details
	resp.Reason = e.Reason
	c.AbortWithStatusJSON(e.Kind.HTTPStatus(), resp)
}
