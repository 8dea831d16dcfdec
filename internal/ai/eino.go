package ai

import (
	"context"
	"errors"
	"io"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"veritas/internal/ai/component"
	"veritas/internal/config"
	"veritas/internal/model/generation"
)

// finishReasonContentFilter OpenAI 兼容接口的内容拦截结束原因
const finishReasonContentFilter = "content_filter"

// einoBackend 基于 Eino ChatModel 的后端（openai, azure, ark）
// 这些接口不支持文件上传，上下文构建会退化为仅提示词
type einoBackend struct {
	name      string
	chatModel model.BaseChatModel
}

func newEinoBackend(ctx context.Context, cfg *config.AIConfig) (*einoBackend, error) {
	chatModel, err := component.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &einoBackend{name: cfg.Provider, chatModel: chatModel}, nil
}

func (b *einoBackend) Name() string {
	return b.name
}

func (b *einoBackend) UploadDocument(ctx context.Context, doc *Document) (*UploadedFile, error) {
	return nil, ErrUploadUnsupported
}

// GenerateStream 流式调用模型
// top_k 不被 OpenAI 兼容接口支持，忽略
func (b *einoBackend) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	if len(req.Turns) == 0 {
		return nil, errors.New("no conversation turns")
	}

	opts := []model.Option{
		model.WithTemperature(req.Options.Temperature),
		model.WithTopP(req.Options.TopP),
		model.WithMaxTokens(int(req.Options.MaxOutputTokens)),
	}
	if req.Model != "" {
		opts = append(opts, model.WithModel(req.Model))
	}

	sr, err := b.chatModel.Stream(ctx, toEinoMessages(req), opts...)
	if err != nil {
		return nil, unavailable(err)
	}
	return &einoStream{sr: sr}, nil
}

func (b *einoBackend) Close() error {
	return nil
}

func toEinoMessages(req *GenerateRequest) []*schema.Message {
	messages := make([]*schema.Message, 0, len(req.Turns)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, schema.SystemMessage(req.SystemInstruction))
	}
	for _, turn := range req.Turns {
		if turn.Role == generation.RoleModel {
			messages = append(messages, schema.AssistantMessage(turn.Text(), nil))
			continue
		}
		messages = append(messages, schema.UserMessage(turn.Text()))
	}
	return messages
}

type einoStream struct {
	sr *schema.StreamReader[*schema.Message]
}

func (s *einoStream) Recv() (*Chunk, error) {
	msg, err := s.sr.Recv()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, unavailable(err)
	}

	chunk := &Chunk{Text: msg.Content}
	if meta := msg.ResponseMeta; meta != nil {
		if meta.FinishReason == finishReasonContentFilter {
			return nil, &BlockedError{Reason: meta.FinishReason}
		}
		if meta.Usage != nil {
			chunk.Usage = &generation.TokenUsage{
				PromptTokens:     meta.Usage.PromptTokens,
				CompletionTokens: meta.Usage.CompletionTokens,
				TotalTokens:      meta.Usage.TotalTokens,
			}
		}
	}
	return chunk, nil
}

func (s *einoStream) Close() error {
	s.sr.Close()
	return nil
}
