package generation

import (
	"context"
	"time"

	"veritas/internal/ai"
	model "veritas/internal/model/generation"
	"veritas/internal/pkg/ctxutil"
	"veritas/internal/pkg/id"
	"veritas/internal/pkg/metrics"
)

const recordTimeout = 5 * time.Second

// BackendProvider 提供 AI 后端（延迟初始化）
type BackendProvider interface {
	Get(ctx context.Context) (ai.Backend, error)
}

// Recorder 生成日志写入
type Recorder interface {
	Create(ctx context.Context, record *model.Record) error
}

// Service 生成服务 - 业务逻辑层
// 业务流程: 1. 校验请求 -> 2. 构建上下文 -> 3. 调用模型 -> 4. 记录日志
type Service struct {
	validator *RequestValidator
	builder   *ContextBuilder
	client    *GenerationClient
	provider  BackendProvider
	recorder  Recorder // 可选
}

// NewService 创建生成服务，recorder 为 nil 时不记录生成日志
func NewService(validator *RequestValidator, builder *ContextBuilder, client *GenerationClient, provider BackendProvider, recorder Recorder) *Service {
	return &Service{
		validator: validator,
		builder:   builder,
		client:    client,
		provider:  provider,
		recorder:  recorder,
	}
}

// Generate 处理一次生成请求
// 返回的错误均为 *Error
func (s *Service) Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	logger := requestLogger(ctx)

	validated, err := s.validator.Validate(req)
	if err != nil {
		e := AsError(err)
		metrics.RecordGeneration(string(e.Kind))
		logger.Info().Str("kind", string(e.Kind)).Interface("details", e.Details).Msg("generation request rejected")
		return nil, e
	}

	start := time.Now()
	record := &model.Record{
		ID:        id.New(),
		Prompt:    validated.Prompt,
		Model:     validated.Model,
		Params:    validated.Params,
		CreatedAt: start,
	}
	if requestID, ok := ctxutil.GetRequestID(ctx); ok {
		record.RequestID = requestID
	}

	resp, err := s.run(ctx, validated, record)
	record.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		e := AsError(err)
		record.Status = model.RecordStatusFailed
		record.ErrorKind = string(e.Kind)
		s.save(ctx, record)
		metrics.RecordGeneration(string(e.Kind))

		event := logger.Error()
		if e.Kind == KindBlockedPrompt {
			event = logger.Warn()
		}
		event.Err(e.Err).
			Str("kind", string(e.Kind)).
			Str("model", validated.Model).
			Str("reason", e.Reason).
			Msg("generation failed")
		return nil, e
	}

	record.Status = model.RecordStatusSucceeded
	record.Response = resp.Response
	s.save(ctx, record)
	metrics.RecordGeneration("success")

	logger.Info().
		Str("model", resp.Model).
		Str("context_mode", string(record.ContextMode)).
		Int("total_tokens", resp.TotalTokens).
		Int64("latency_ms", record.LatencyMs).
		Msg("generation completed")
	return resp, nil
}

func (s *Service) run(ctx context.Context, req *model.Request, record *model.Record) (*model.GenerateResponse, error) {
	backend, err := s.provider.Get(ctx)
	if err != nil {
		return nil, &Error{Kind: KindServiceMisconfigured, Message: "Generation service is not configured", Err: err}
	}

	turns, mode := s.builder.Build(ctx, backend, req.Prompt)
	record.ContextMode = mode
	metrics.RecordContextMode(string(mode))

	start := time.Now()
	result, err := s.client.Generate(ctx, backend, req, turns)
	metrics.ObserveGenerationDuration(req.Model, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	resp := &model.GenerateResponse{
		Response: result.Text,
		Model:    req.Model,
	}
	if result.Usage != nil {
		record.Usage = result.Usage
		resp.PromptTokens = result.Usage.PromptTokens
		resp.CompletionTokens = result.Usage.CompletionTokens
		resp.TotalTokens = result.Usage.TotalTokens
	}
	return resp, nil
}

// save 写入生成日志，失败只记录警告
func (s *Service) save(ctx context.Context, record *model.Record) {
	if s.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.recorder.Create(ctx, record); err != nil {
		logger := requestLogger(ctx)
		logger.Warn().Err(err).Str("generation_id", record.ID).Msg("failed to save generation record")
	}
}
