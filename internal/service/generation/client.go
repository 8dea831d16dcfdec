package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"veritas/internal/ai"
	"veritas/internal/config"
	model "veritas/internal/model/generation"
)

const defaultResponseMIMEType = "text/plain"

// GenerationClient 调用远端生成接口
// 拼接流式输出、应用采样参数默认值，并将失败归类为 Error
type GenerationClient struct {
	systemInstruction string
	defaults          config.AIOptionsConfig
	timeout           time.Duration
}

// Result 生成结果
type Result struct {
	Text  string
	Usage *model.TokenUsage
}

// NewGenerationClient 创建生成客户端
func NewGenerationClient(cfg *config.AIConfig) *GenerationClient {
	return &GenerationClient{
		systemInstruction: cfg.SystemInstruction,
		defaults:          cfg.Options,
		timeout:           cfg.GenerateTimeout,
	}
}

// Generate 发起一次生成，不重试
func (c *GenerationClient) Generate(ctx context.Context, gen ai.Generator, req *model.Request, turns []model.Turn) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &Error{Kind: KindInternal, Message: internalErrorMessage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream, err := gen.GenerateStream(ctx, &ai.GenerateRequest{
		Model:             req.Model,
		SystemInstruction: c.systemInstruction,
		Turns:             turns,
		Options:           c.Options(req.Params),
	})
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer stream.Close()

	var (
		sb    strings.Builder
		usage *model.TokenUsage
	)
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classify(ctx, err)
		}
		sb.WriteString(chunk.Text)
		if chunk.Usage != nil {
			usage = chunk.Usage
		}
	}

	return &Result{
		Text:  strings.TrimSpace(sb.String()),
		Usage: usage,
	}, nil
}

// Options 合并请求参数与配置默认值
func (c *GenerationClient) Options(p model.Params) ai.Options {
	opts := ai.Options{
		Temperature:      float32(c.defaults.Temperature),
		TopP:             float32(c.defaults.TopP),
		TopK:             int32(c.defaults.TopK),
		MaxOutputTokens:  int32(c.defaults.MaxOutputTokens),
		ResponseMIMEType: c.defaults.ResponseMIMEType,
	}
	if opts.ResponseMIMEType == "" {
		opts.ResponseMIMEType = defaultResponseMIMEType
	}

	if p.Temperature != nil {
		opts.Temperature = float32(*p.Temperature)
	}
	if p.TopP != nil {
		opts.TopP = float32(*p.TopP)
	}
	if p.TopK != nil {
		opts.TopK = int32(*p.TopK)
	}
	if p.MaxOutputTokens != nil {
		opts.MaxOutputTokens = int32(*p.MaxOutputTokens)
	}
	return opts
}

// classify 将后端错误归类
func classify(ctx context.Context, err error) *Error {
	var blocked *ai.BlockedError
	switch {
	case errors.As(err, &blocked):
		return &Error{
			Kind:    KindBlockedPrompt,
			Message: "Prompt was blocked by the content safety filter",
			Reason:  blocked.Reason,
			Err:     err,
		}
	case errors.Is(err, ai.ErrNotConfigured), rejectedCredentials(err):
		return &Error{Kind: KindServiceMisconfigured, Message: "Generation service is not configured", Err: err}
	case errors.Is(err, ai.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		ctx.Err() != nil:
		return &Error{
			Kind:    KindServiceUnavailable,
			Message: fmt.Sprintf("Generation service unavailable: %v", err),
			Err:     err,
		}
	default:
		return &Error{Kind: KindInternal, Message: internalErrorMessage, Err: err}
	}
}

// rejectedCredentials 远端拒绝了 API Key，属于配置问题而不是临时故障
func rejectedCredentials(err error) bool {
	switch ai.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}
