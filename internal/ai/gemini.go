package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"veritas/internal/config"
	"veritas/internal/model/generation"
)

const defaultFilePollInterval = 2 * time.Second

// geminiBackend Google Gemini 后端
type geminiBackend struct {
	client       *genai.Client
	pollInterval time.Duration
}

func newGeminiBackend(ctx context.Context, cfg *config.AIConfig) (*geminiBackend, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiBackend{
		client:       client,
		pollInterval: defaultFilePollInterval,
	}, nil
}

func (b *geminiBackend) Name() string {
	return "gemini"
}

// UploadDocument 上传文件，等待远端处理完成
func (b *geminiBackend) UploadDocument(ctx context.Context, doc *Document) (*UploadedFile, error) {
	f, err := b.client.UploadFile(ctx, "", doc.Reader, &genai.UploadFileOptions{
		DisplayName: doc.Name,
		MIMEType:    doc.MIMEType,
	})
	if err != nil {
		return nil, unavailable(err)
	}

	for f.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, unavailable(ctx.Err())
		case <-time.After(b.pollInterval):
		}

		f, err = b.client.GetFile(ctx, f.Name)
		if err != nil {
			return nil, unavailable(err)
		}
	}

	if f.State == genai.FileStateFailed {
		return nil, fmt.Errorf("%w: file %s processing failed", ErrUnavailable, f.Name)
	}

	mimeType := f.MIMEType
	if mimeType == "" {
		mimeType = doc.MIMEType
	}
	return &UploadedFile{Name: f.Name, URI: f.URI, MIMEType: mimeType}, nil
}

// GenerateStream 以多轮对话方式发起流式生成
// 除最后一轮外的内容作为历史，最后一轮作为本次发送的消息
func (b *geminiBackend) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	if len(req.Turns) == 0 {
		return nil, errors.New("no conversation turns")
	}

	m := b.client.GenerativeModel(req.Model)
	m.SetTemperature(req.Options.Temperature)
	m.SetTopP(req.Options.TopP)
	m.SetTopK(req.Options.TopK)
	m.SetMaxOutputTokens(req.Options.MaxOutputTokens)
	m.ResponseMIMEType = req.Options.ResponseMIMEType
	if req.SystemInstruction != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}

	contents := toGeminiContents(req.Turns)
	last := contents[len(contents)-1]

	session := m.StartChat()
	session.History = contents[:len(contents)-1]

	return &geminiStream{it: session.SendMessageStream(ctx, last.Parts...)}, nil
}

func (b *geminiBackend) Close() error {
	return b.client.Close()
}

func toGeminiContents(turns []generation.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			if p.File != nil {
				parts = append(parts, genai.FileData{MIMEType: p.File.MIMEType, URI: p.File.URI})
				continue
			}
			parts = append(parts, genai.Text(p.Text))
		}
		contents = append(contents, &genai.Content{Role: string(turn.Role), Parts: parts})
	}
	return contents
}

type geminiStream struct {
	it *genai.GenerateContentResponseIterator
}

func (s *geminiStream) Recv() (*Chunk, error) {
	resp, err := s.it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, io.EOF
	}
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return nil, &BlockedError{Reason: geminiBlockReason(blocked)}
		}
		return nil, unavailable(err)
	}

	chunk := &Chunk{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		chunk.Text = sb.String()
	}
	if u := resp.UsageMetadata; u != nil {
		chunk.Usage = &generation.TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return chunk, nil
}

func (s *geminiStream) Close() error {
	return nil
}

func geminiBlockReason(err *genai.BlockedError) string {
	if err.PromptFeedback != nil {
		return err.PromptFeedback.BlockReason.String()
	}
	if err.Candidate != nil {
		return err.Candidate.FinishReason.String()
	}
	return ""
}
