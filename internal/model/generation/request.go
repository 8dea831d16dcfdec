package generation

// GenerateRequest 生成接口的原始请求体
// prompt 使用指针区分「未提供」（validation_error）与「空白」（empty_prompt）
type GenerateRequest struct {
	Prompt          *string  `json:"prompt" validate:"required"`                                            // 提示词（必填）
	Model           string   `json:"model,omitempty"`                                                       // 模型名称，为空时使用配置默认值
	Temperature     *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`                // 随机性 0.0-1.0
	TopP            *float64 `json:"top_p,omitempty" validate:"omitempty,gte=0,lte=1"`                      // 核采样 0.0-1.0
	TopK            *int     `json:"top_k,omitempty" validate:"omitempty,gte=1,lte=2147483647"`             // Top-k 采样，上限为 int32
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty" validate:"omitempty,gte=1,lte=2147483647"` // 最大输出 token 数，上限为 int32
}

// Request 通过校验的生成请求
type Request struct {
	Prompt string // 已去除首尾空白，非空
	Model  string // 已应用默认模型
	Params Params
}

// Params 调用方指定的采样参数，nil 表示使用默认值
type Params struct {
	Temperature     *float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	TopP            *float64 `bson:"top_p,omitempty" json:"top_p,omitempty"`
	TopK            *int     `bson:"top_k,omitempty" json:"top_k,omitempty"`
	MaxOutputTokens *int     `bson:"max_output_tokens,omitempty" json:"max_output_tokens,omitempty"`
}
