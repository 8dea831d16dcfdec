package generation

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"veritas/internal/ai"
	"veritas/internal/config"
	model "veritas/internal/model/generation"
	"veritas/internal/pkg/storage"
)

// fakeBackend 可编排的 AI 后端
type fakeBackend struct {
	mu sync.Mutex

	uploadFile  *ai.UploadedFile
	uploadErrs  []error // 按调用次序返回的错误
	uploadPanic bool

	chunks    []string
	usage     *model.TokenUsage
	streamErr error // GenerateStream 直接返回的错误
	recvErrAt int   // 在第几个片段之后返回 recvErr（从 0 开始），-1 表示不返回
	recvErr   error
	hang      bool // Recv 阻塞直到 ctx 结束

	uploadCalls   int
	generateCalls int
	recvCalls     int
	lastRequest   *ai.GenerateRequest
	uploadedBody  string
}

func newFakeBackend(chunks ...string) *fakeBackend {
	return &fakeBackend{
		uploadFile: &ai.UploadedFile{Name: "files/abc", URI: "https://files.example/abc", MIMEType: "application/pdf"},
		chunks:     chunks,
		recvErrAt:  -1,
	}
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Close() error { return nil }

func (b *fakeBackend) UploadDocument(ctx context.Context, doc *ai.Document) (*ai.UploadedFile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	call := b.uploadCalls
	b.uploadCalls++
	if b.uploadPanic {
		panic("upload exploded")
	}
	if call < len(b.uploadErrs) && b.uploadErrs[call] != nil {
		return nil, b.uploadErrs[call]
	}
	body, _ := io.ReadAll(doc.Reader)
	b.uploadedBody = string(body)
	return b.uploadFile, nil
}

func (b *fakeBackend) GenerateStream(ctx context.Context, req *ai.GenerateRequest) (ai.Stream, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.generateCalls++
	b.lastRequest = req
	if b.streamErr != nil {
		return nil, b.streamErr
	}
	return &fakeStream{backend: b, ctx: ctx}, nil
}

type fakeStream struct {
	backend *fakeBackend
	ctx     context.Context
	pos     int
}

func (s *fakeStream) Recv() (*ai.Chunk, error) {
	b := s.backend
	if b.hang {
		<-s.ctx.Done()
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.recvCalls++
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if b.recvErrAt >= 0 && s.pos == b.recvErrAt {
		return nil, b.recvErr
	}
	if s.pos >= len(b.chunks) {
		return nil, io.EOF
	}
	chunk := &ai.Chunk{Text: b.chunks[s.pos]}
	s.pos++
	if s.pos == len(b.chunks) {
		chunk.Usage = b.usage
	}
	return chunk, nil
}

func (s *fakeStream) Close() error { return nil }

// fakeProvider 计数的后端提供者
type fakeProvider struct {
	backend ai.Backend
	err     error
	calls   int
}

func (p *fakeProvider) Get(ctx context.Context) (ai.Backend, error) {
	p.calls++
	return p.backend, p.err
}

// memStorage 内存存储
type memStorage struct {
	files     map[string][]byte
	existsErr error
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (s *memStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Exists(ctx context.Context, key string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	_, ok := s.files[key]
	return ok, nil
}

func (s *memStorage) GetFileInfo(ctx context.Context, key string) (*storage.FileInfo, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.FileInfo{Key: key, Size: int64(len(data)), ContentType: "application/pdf", LastModified: time.Now()}, nil
}

func (s *memStorage) GetStorageType() string { return "memory" }

// fakeRecorder 记录写入的生成日志
type fakeRecorder struct {
	records []*model.Record
	err     error
}

func (r *fakeRecorder) Create(ctx context.Context, record *model.Record) error {
	r.records = append(r.records, record)
	return r.err
}

const testDocumentKey = "data/veritas.pdf"

func testAIConfig() *config.AIConfig {
	return &config.AIConfig{
		Provider:          "gemini",
		APIKey:            "test-key",
		Model:             "gemini-1.5-flash",
		SystemInstruction: "You are an AI chatbot for Veritas University Abuja.",
		UploadTimeout:     time.Second,
		GenerateTimeout:   time.Second,
		UploadRetries:     1,
		UploadBackoff:     time.Millisecond,
		Options: config.AIOptionsConfig{
			Temperature:      0.9,
			TopP:             0.95,
			TopK:             64,
			MaxOutputTokens:  8192,
			ResponseMIMEType: "text/plain",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
