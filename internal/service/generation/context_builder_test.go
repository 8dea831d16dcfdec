package generation

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/ai"
	model "veritas/internal/model/generation"
)

func TestContextBuilder_Build(t *testing.T) {
	Convey("ContextBuilder 构建对话轮次", t, func() {
		ctx := context.Background()
		store := newMemStorage()
		store.files[testDocumentKey] = []byte("veritas data")
		backend := newFakeBackend()
		builder := NewContextBuilder(store, testDocumentKey, testAIConfig())
		prompt := "  Who is the Vice-Chancellor?  "

		Convey("文档存在时生成 user -> model -> user 三轮", func() {
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextWithDocument)
			So(turns, ShouldHaveLength, 3)
			So(turns[0].Role, ShouldEqual, model.RoleUser)
			So(turns[1].Role, ShouldEqual, model.RoleModel)
			So(turns[2].Role, ShouldEqual, model.RoleUser)
			So(turns[2].Text(), ShouldEqual, prompt)

			So(turns[0].Parts, ShouldHaveLength, 2)
			So(turns[0].Parts[0].File.URI, ShouldEqual, "https://files.example/abc")
			So(turns[0].Parts[0].File.MIMEType, ShouldEqual, "application/pdf")
			So(turns[0].Parts[1].Text, ShouldEqual, documentCaption)
			So(turns[1].Text(), ShouldEqual, documentAcknowledgment)

			So(backend.uploadCalls, ShouldEqual, 1)
			So(backend.uploadedBody, ShouldEqual, "veritas data")
		})

		Convey("文档不存在时只有一轮用户提示词", func() {
			delete(store.files, testDocumentKey)
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(turns, ShouldHaveLength, 1)
			So(turns[0].Role, ShouldEqual, model.RoleUser)
			So(turns[0].Text(), ShouldEqual, prompt)
			So(backend.uploadCalls, ShouldEqual, 0)
		})

		Convey("未配置文档路径时只有一轮", func() {
			b := NewContextBuilder(store, "", testAIConfig())
			turns, mode := b.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(turns, ShouldHaveLength, 1)
		})

		Convey("检查文档失败时退化", func() {
			store.existsErr = errors.New("permission denied")
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(turns, ShouldHaveLength, 1)
		})

		Convey("上传持续失败时不报错并退化为一轮", func() {
			backend.uploadErrs = []error{ai.ErrUnavailable, ai.ErrUnavailable}
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(turns, ShouldHaveLength, 1)
			So(turns[0].Text(), ShouldEqual, prompt)
			So(backend.uploadCalls, ShouldEqual, 2)
		})

		Convey("上传失败一次后重试成功", func() {
			backend.uploadErrs = []error{ai.ErrUnavailable}
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextWithDocument)
			So(turns, ShouldHaveLength, 3)
			So(backend.uploadCalls, ShouldEqual, 2)
		})

		Convey("不配置重试时只上传一次", func() {
			cfg := testAIConfig()
			cfg.UploadRetries = 0
			b := NewContextBuilder(store, testDocumentKey, cfg)
			backend.uploadErrs = []error{ai.ErrUnavailable}
			_, mode := b.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(backend.uploadCalls, ShouldEqual, 1)
		})

		Convey("后端不支持上传时不重试", func() {
			backend.uploadErrs = []error{ai.ErrUploadUnsupported, ai.ErrUploadUnsupported}
			_, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(backend.uploadCalls, ShouldEqual, 1)
		})

		Convey("上传时 panic 也退化为一轮", func() {
			backend.uploadPanic = true
			var turns []model.Turn
			So(func() { turns, _ = builder.Build(ctx, backend, prompt) }, ShouldNotPanic)
			So(turns, ShouldHaveLength, 1)
			So(turns[0].Text(), ShouldEqual, prompt)
		})

		Convey("上传结果没有 URI 时退化", func() {
			backend.uploadFile = &ai.UploadedFile{Name: "files/abc"}
			turns, mode := builder.Build(ctx, backend, prompt)
			So(mode, ShouldEqual, model.ContextPromptOnly)
			So(turns, ShouldHaveLength, 1)
		})

		Convey("上传结果没有 MIME 类型时使用默认值", func() {
			backend.uploadFile = &ai.UploadedFile{Name: "files/abc", URI: "https://files.example/abc"}
			turns, _ := builder.Build(ctx, backend, prompt)
			So(turns[0].Parts[0].File.MIMEType, ShouldEqual, "application/octet-stream")
		})
	})
}
