package ai

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/config"
)

type nopBackend struct {
	closed bool
}

func (b *nopBackend) Name() string { return "nop" }

func (b *nopBackend) UploadDocument(ctx context.Context, doc *Document) (*UploadedFile, error) {
	return nil, ErrUploadUnsupported
}

func (b *nopBackend) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	return nil, errors.New("not implemented")
}

func (b *nopBackend) Close() error {
	b.closed = true
	return nil
}

func TestProvider(t *testing.T) {
	Convey("Provider 延迟且只初始化一次", t, func() {
		calls := 0
		backend := &nopBackend{}
		p := NewProvider(func(ctx context.Context) (Backend, error) {
			calls++
			return backend, nil
		})
		So(calls, ShouldEqual, 0)

		b1, err := p.Get(context.Background())
		So(err, ShouldBeNil)
		b2, _ := p.Get(context.Background())
		So(b1, ShouldEqual, b2)
		So(calls, ShouldEqual, 1)

		So(p.Close(), ShouldBeNil)
		So(backend.closed, ShouldBeTrue)
	})

	Convey("初始化失败的结果同样被共享", t, func() {
		calls := 0
		p := NewProvider(func(ctx context.Context) (Backend, error) {
			calls++
			return nil, ErrNotConfigured
		})
		_, err := p.Get(context.Background())
		So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		_, err = p.Get(context.Background())
		So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		So(calls, ShouldEqual, 1)
		So(p.Close(), ShouldBeNil)
	})

	Convey("首个请求取消不影响后端构造上下文", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var seen error
		p := NewProvider(func(ctx context.Context) (Backend, error) {
			seen = ctx.Err()
			return &nopBackend{}, nil
		})
		_, err := p.Get(ctx)
		So(err, ShouldBeNil)
		So(seen, ShouldBeNil)
	})
}

func TestNewBackend(t *testing.T) {
	Convey("NewBackend 配置错误归类为 ErrNotConfigured", t, func() {
		ctx := context.Background()

		Convey("缺少 API Key", func() {
			_, err := NewBackend(ctx, &config.AIConfig{Provider: "gemini"})
			So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		})

		Convey("未知 provider", func() {
			_, err := NewBackend(ctx, &config.AIConfig{Provider: "claude", APIKey: "k"})
			So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		})

		Convey("SDK 构造失败", func() {
			_, err := NewBackend(ctx, &config.AIConfig{Provider: "azure", APIKey: "k"})
			So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		})

		Convey("openai 后端不支持上传", func() {
			b, err := NewBackend(ctx, &config.AIConfig{Provider: "openai", APIKey: "k", Model: "gpt-4o-mini"})
			So(err, ShouldBeNil)
			So(b.Name(), ShouldEqual, "openai")
			_, err = b.UploadDocument(ctx, &Document{Name: "data.pdf"})
			So(errors.Is(err, ErrUploadUnsupported), ShouldBeTrue)
			So(b.Close(), ShouldBeNil)
		})
	})
}

func TestBlockedError(t *testing.T) {
	Convey("BlockedError 携带拦截原因", t, func() {
		So((&BlockedError{Reason: "SAFETY"}).Error(), ShouldContainSubstring, "SAFETY")
		So((&BlockedError{}).Error(), ShouldEqual, "prompt blocked")
	})

	Convey("unavailable 包装远端错误", t, func() {
		err := unavailable(context.DeadlineExceeded)
		So(errors.Is(err, ErrUnavailable), ShouldBeTrue)
		So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		So(unavailable(err), ShouldEqual, err)
		So(unavailable(nil), ShouldBeNil)
		So(StatusCode(err), ShouldEqual, 0)
	})
}
