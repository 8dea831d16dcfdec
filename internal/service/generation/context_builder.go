package generation

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"veritas/internal/ai"
	"veritas/internal/config"
	model "veritas/internal/model/generation"
	"veritas/internal/pkg/ctxutil"
	"veritas/internal/pkg/storage"
)

const defaultDocumentMIMEType = "application/octet-stream"

// ContextBuilder 组装发送给模型的对话轮次
// 参考文档可用时生成 3 轮（文档+说明、模型确认、用户提示词），否则退化为仅用户提示词
// 任何附加文档过程中的失败都只记录日志，不会向上返回
type ContextBuilder struct {
	store         storage.Storage
	documentKey   string
	uploadTimeout time.Duration
	uploadRetries int
	uploadBackoff time.Duration
}

// NewContextBuilder 创建上下文构建器
// store 为 nil 或 documentKey 为空时始终使用仅提示词模式
func NewContextBuilder(store storage.Storage, documentKey string, cfg *config.AIConfig) *ContextBuilder {
	return &ContextBuilder{
		store:         store,
		documentKey:   documentKey,
		uploadTimeout: cfg.UploadTimeout,
		uploadRetries: cfg.UploadRetries,
		uploadBackoff: cfg.UploadBackoff,
	}
}

// Build 构建对话轮次
func (b *ContextBuilder) Build(ctx context.Context, uploader ai.DocumentUploader, prompt string) (turns []model.Turn, mode model.ContextMode) {
	logger := requestLogger(ctx).With().Str("document", b.documentKey).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("panic while attaching reference document, falling back to prompt only")
			turns, mode = promptOnlyTurns(prompt), model.ContextPromptOnly
		}
	}()

	if b.store == nil || b.documentKey == "" {
		return promptOnlyTurns(prompt), model.ContextPromptOnly
	}

	exists, err := b.store.Exists(ctx, b.documentKey)
	if err != nil {
		logger.Error().Err(err).Msg("failed to check reference document, falling back to prompt only")
		return promptOnlyTurns(prompt), model.ContextPromptOnly
	}
	if !exists {
		logger.Warn().Msg("reference document not found, falling back to prompt only")
		return promptOnlyTurns(prompt), model.ContextPromptOnly
	}

	file, err := b.upload(ctx, uploader, logger)
	if err != nil {
		if errors.Is(err, ai.ErrUploadUnsupported) {
			logger.Info().Msg("backend does not accept documents, using prompt only")
		} else {
			logger.Error().Err(err).Msg("failed to upload reference document, falling back to prompt only")
		}
		return promptOnlyTurns(prompt), model.ContextPromptOnly
	}
	if file.URI == "" {
		logger.Error().Str("file", file.Name).Msg("uploaded document has no URI, falling back to prompt only")
		return promptOnlyTurns(prompt), model.ContextPromptOnly
	}

	mimeType := file.MIMEType
	if mimeType == "" {
		mimeType = defaultDocumentMIMEType
	}

	logger.Info().
		Str("file", file.Name).
		Str("uri", file.URI).
		Msg("reference document uploaded")

	return []model.Turn{
		{
			Role: model.RoleUser,
			Parts: []model.Part{
				model.FilePart(file.URI, mimeType),
				model.TextPart(documentCaption),
			},
		},
		{
			Role:  model.RoleModel,
			Parts: []model.Part{model.TextPart(documentAcknowledgment)},
		},
		{
			Role:  model.RoleUser,
			Parts: []model.Part{model.TextPart(prompt)},
		},
	}, model.ContextWithDocument
}

// upload 上传参考文档，失败时按配置重试（最多一次）
func (b *ContextBuilder) upload(ctx context.Context, uploader ai.DocumentUploader, logger zerolog.Logger) (*ai.UploadedFile, error) {
	var lastErr error
	for attempt := 0; attempt <= b.uploadRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(b.uploadBackoff):
			}
		}

		file, err := b.uploadOnce(ctx, uploader)
		if err == nil {
			return file, nil
		}
		lastErr = err

		// 不支持上传或请求已取消时重试没有意义
		if errors.Is(err, ai.ErrUploadUnsupported) || ctx.Err() != nil {
			break
		}
		logger.Warn().Err(err).Int("attempt", attempt+1).Msg("reference document upload failed")
	}
	return nil, lastErr
}

func (b *ContextBuilder) uploadOnce(ctx context.Context, uploader ai.DocumentUploader) (*ai.UploadedFile, error) {
	ctx, cancel := context.WithTimeout(ctx, b.uploadTimeout)
	defer cancel()

	var mimeType string
	if info, err := b.store.GetFileInfo(ctx, b.documentKey); err == nil {
		mimeType = info.ContentType
	}

	rc, err := b.store.Download(ctx, b.documentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference document: %w", err)
	}
	defer rc.Close()

	return uploader.UploadDocument(ctx, &ai.Document{
		Name:     path.Base(b.documentKey),
		MIMEType: mimeType,
		Reader:   rc,
	})
}

func promptOnlyTurns(prompt string) []model.Turn {
	return []model.Turn{
		{
			Role:  model.RoleUser,
			Parts: []model.Part{model.TextPart(prompt)},
		},
	}
}

// requestLogger 返回带 request_id 的日志记录器
func requestLogger(ctx context.Context) zerolog.Logger {
	if requestID, ok := ctxutil.GetRequestID(ctx); ok {
		return log.With().Str("request_id", requestID).Logger()
	}
	return log.Logger
}
