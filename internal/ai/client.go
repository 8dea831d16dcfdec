package ai

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"veritas/internal/config"
	"veritas/internal/model/generation"
)

// Backend AI 能力层后端
// 职责: 上传参考文档、流式生成文本
type Backend interface {
	DocumentUploader
	Generator
	// Name 后端名称（gemini/openai/azure/ark）
	Name() string
	Close() error
}

// DocumentUploader 上传文档，返回可在本次请求中引用的远端文件
type DocumentUploader interface {
	UploadDocument(ctx context.Context, doc *Document) (*UploadedFile, error)
}

// Generator 流式生成
type Generator interface {
	GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error)
}

// Stream 生成结果流，读完时 Recv 返回 io.EOF
type Stream interface {
	Recv() (*Chunk, error)
	Close() error
}

// Document 待上传的文档
type Document struct {
	Name     string
	MIMEType string
	Reader   io.Reader
}

// UploadedFile 已上传的远端文件
type UploadedFile struct {
	Name     string
	URI      string
	MIMEType string
}

// GenerateRequest 生成请求
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Turns             []generation.Turn // 至少一轮，最后一轮为 user
	Options           Options
}

// Options 采样参数（已应用默认值）
type Options struct {
	Temperature      float32
	TopP             float32
	TopK             int32
	MaxOutputTokens  int32
	ResponseMIMEType string
}

// Chunk 流式输出片段
type Chunk struct {
	Text  string
	Usage *generation.TokenUsage // 仅在上游返回时非空
}

// NewBackend 根据配置创建后端
// 配置缺失或 SDK 初始化失败时返回的错误包装 ErrNotConfigured
func NewBackend(ctx context.Context, cfg *config.AIConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is not set", ErrNotConfigured)
	}

	var (
		backend Backend
		err     error
	)
	switch cfg.Provider {
	case "gemini", "":
		backend, err = newGeminiBackend(ctx, cfg)
	case "openai", "azure", "ark":
		backend, err = newEinoBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported AI provider: %s", ErrNotConfigured, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}

	log.Info().
		Str("provider", backend.Name()).
		Str("model", cfg.Model).
		Msg("AI backend initialized")
	return backend, nil
}

// Factory 后端构造函数
type Factory func(ctx context.Context) (Backend, error)

// Provider 延迟初始化的后端句柄
// 首次 Get 时构造，之后所有请求共享同一个后端（包括构造失败的结果）
type Provider struct {
	factory Factory

	once    sync.Once
	backend Backend
	err     error
}

// NewProvider 创建 Provider
func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// Get 获取后端，必要时初始化
func (p *Provider) Get(ctx context.Context) (Backend, error) {
	p.once.Do(func() {
		// 后端生命周期与首个请求无关
		p.backend, p.err = p.factory(context.WithoutCancel(ctx))
		if p.err != nil {
			log.Error().Err(p.err).Msg("AI backend initialization failed")
		}
	})
	return p.backend, p.err
}

// Close 关闭已初始化的后端
func (p *Provider) Close() error {
	if p.backend == nil {
		return nil
	}
	return p.backend.Close()
}
