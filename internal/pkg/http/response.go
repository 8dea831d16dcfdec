package http

// ErrorResponse 错误响应（所有API共用）
// 用于统一错误响应格式
type ErrorResponse struct {
	Error   string            `json:"error"`             // 错误消息
	Kind    string            `json:"kind,omitempty"`    // 错误类型（稳定标识，如 validation_error）
	Code    int               `json:"code"`              // 业务错误码
	Details map[string]string `json:"details,omitempty"` // 字段级错误详情（可选）
	Reason  string            `json:"reason,omitempty"`  // 上游给出的原因（如拦截原因）
}

// SuccessResponse 成功响应（所有API共用）
// 用于统一成功响应格式
type SuccessResponse struct {
	Code    int         `json:"code"`           // 状态码（0表示成功）
	Message string      `json:"message"`        // 响应消息
	Data    interface{} `json:"data,omitempty"` // 响应数据（可选）
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(message string, data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Code:    0,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, kind, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
		Kind:  kind,
		Code:  code,
	}
}
