package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 生成请求的错误类型
type Kind string

const (
	KindValidation           Kind = "validation_error"
	KindEmptyPrompt          Kind = "empty_prompt"
	KindBlockedPrompt        Kind = "blocked_prompt"
	KindServiceMisconfigured Kind = "service_misconfigured"
	KindServiceUnavailable   Kind = "service_unavailable"
	KindInternal             Kind = "internal_error"
)

// HTTPStatus 错误类型对应的 HTTP 状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindEmptyPrompt, KindBlockedPrompt:
		return http.StatusBadRequest
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code 业务错误码
func (k Kind) Code() int {
	switch k {
	case KindValidation:
		return 40001
	case KindEmptyPrompt:
		return 40002
	case KindBlockedPrompt:
		return 40003
	case KindServiceMisconfigured:
		return 50001
	case KindServiceUnavailable:
		return 50301
	default:
		return 50000
	}
}

// Error 生成流程的分类错误
type Error struct {
	Kind    Kind
	Message string            // 返回给调用方的信息
	Details map[string]string // 字段级校验错误
	Reason  string            // 拦截原因（blocked_prompt）
	Err     error             // 原始错误，仅记录日志
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError 提取分类错误，未分类的错误视为 internal_error
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: internalErrorMessage, Err: err}
}

const internalErrorMessage = "An internal error occurred"

func newValidationError(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}
