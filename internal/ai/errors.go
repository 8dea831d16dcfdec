package ai

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotConfigured 后端无法初始化（缺少 API Key、未知 provider、SDK 构造失败）
	ErrNotConfigured = errors.New("ai backend is not configured")
	// ErrUnavailable 远端不可达、返回错误或超时
	ErrUnavailable = errors.New("ai backend is unavailable")
	// ErrUploadUnsupported 后端不支持上传文件
	ErrUploadUnsupported = errors.New("ai backend does not support document upload")
)

// BlockedError 提示词或生成内容被安全策略拦截
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	if e.Reason == "" {
		return "prompt blocked"
	}
	return fmt.Sprintf("prompt blocked: %s", e.Reason)
}

// unavailable 将远端错误包装为 ErrUnavailable
func unavailable(err error) error {
	if err == nil || errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// StatusCode 提取远端返回的 HTTP 状态码，没有时返回 0
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
