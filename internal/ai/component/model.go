package component

import (
	"context"
	"fmt"

	arkext "github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"veritas/internal/config"
)

const defaultArkBaseURL = "https://ark.cn-beijing.volces.com/api/v3"

// NewChatModel 创建 ChatModel
// 支持多种 Provider: openai, azure, ark
func NewChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case "openai":
		return newOpenAIChatModel(ctx, cfg, false)
	case "azure":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("azure provider requires base_url")
		}
		return newOpenAIChatModel(ctx, cfg, true)
	case "ark":
		return newArkChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// newOpenAIChatModel 创建 OpenAI / Azure OpenAI ChatModel
func newOpenAIChatModel(ctx context.Context, cfg *config.AIConfig, byAzure bool) (model.BaseChatModel, error) {
	modelCfg := &openai.ChatModelConfig{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL, // 为空时使用官方地址
		ByAzure: byAzure,
	}

	// 默认采样参数，请求级参数在调用时覆盖
	temp := float32(cfg.Options.Temperature)
	modelCfg.Temperature = &temp
	topP := float32(cfg.Options.TopP)
	modelCfg.TopP = &topP
	if cfg.Options.MaxOutputTokens > 0 {
		maxTokens := cfg.Options.MaxOutputTokens
		modelCfg.MaxTokens = &maxTokens
	}

	cm, err := openai.NewChatModel(ctx, modelCfg)
	if err != nil {
		return nil, err
	}
	return cm, nil
}

// newArkChatModel 创建 Ark ChatModel（使用 eino-ext 模块）
func newArkChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultArkBaseURL
	}

	modelCfg := &arkext.ChatModelConfig{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
	}

	temp := float32(cfg.Options.Temperature)
	modelCfg.Temperature = &temp
	topP := float32(cfg.Options.TopP)
	modelCfg.TopP = &topP
	if cfg.Options.MaxOutputTokens > 0 {
		maxTokens := cfg.Options.MaxOutputTokens
		modelCfg.MaxTokens = &maxTokens
	}

	cm, err := arkext.NewChatModel(ctx, modelCfg)
	if err != nil {
		return nil, err
	}
	return cm, nil
}
