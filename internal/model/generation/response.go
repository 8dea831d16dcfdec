package generation

// GenerateResponse 生成接口响应
type GenerateResponse struct {
	Response         string `json:"response"`                    // 生成的文本
	Model            string `json:"model"`                       // 实际使用的模型
	PromptTokens     int    `json:"prompt_tokens,omitempty"`     // 提示词 token 数（上游提供时）
	CompletionTokens int    `json:"completion_tokens,omitempty"` // 生成 token 数
	TotalTokens      int    `json:"total_tokens,omitempty"`      // 总 token 数
}

// TokenUsage Token 使用统计
type TokenUsage struct {
	PromptTokens     int `bson:"prompt_tokens" json:"prompt_tokens"`
	CompletionTokens int `bson:"completion_tokens" json:"completion_tokens"`
	TotalTokens      int `bson:"total_tokens" json:"total_tokens"`
}
