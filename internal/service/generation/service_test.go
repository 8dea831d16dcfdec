package generation

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/ai"
	model "veritas/internal/model/generation"
	"veritas/internal/pkg/ctxutil"
)

func newTestService(backend *fakeBackend, store *memStorage, recorder Recorder) (*Service, *fakeProvider) {
	cfg := testAIConfig()
	provider := &fakeProvider{backend: backend}
	svc := NewService(
		NewRequestValidator(cfg.Model),
		NewContextBuilder(store, testDocumentKey, cfg),
		NewGenerationClient(cfg),
		provider,
		recorder,
	)
	return svc, provider
}

func TestService_Generate(t *testing.T) {
	Convey("Service.Generate 串联完整流程", t, func() {
		ctx := ctxutil.WithRequestID(context.Background(), "req-1")
		store := newMemStorage()
		store.files[testDocumentKey] = []byte("veritas data")
		backend := newFakeBackend("The VC is ", "Prof. Ichoku.")
		recorder := &fakeRecorder{}
		svc, provider := newTestService(backend, store, recorder)

		Convey("成功时返回拼接后的文本和模型", func() {
			resp, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("Who is the VC?")})
			So(err, ShouldBeNil)
			So(resp.Response, ShouldEqual, "The VC is Prof. Ichoku.")
			So(resp.Model, ShouldEqual, "gemini-1.5-flash")

			So(backend.lastRequest.Turns, ShouldHaveLength, 3)
			So(backend.lastRequest.Turns[2].Text(), ShouldEqual, "Who is the VC?")

			So(recorder.records, ShouldHaveLength, 1)
			rec := recorder.records[0]
			So(rec.Status, ShouldEqual, model.RecordStatusSucceeded)
			So(rec.RequestID, ShouldEqual, "req-1")
			So(rec.ContextMode, ShouldEqual, model.ContextWithDocument)
			So(rec.Response, ShouldEqual, resp.Response)
			So(rec.ID, ShouldNotBeEmpty)
		})

		Convey("空白或缺失的 prompt 不产生任何远端调用", func() {
			for _, req := range []*model.GenerateRequest{{}, {Prompt: ptr("   ")}} {
				_, err := svc.Generate(ctx, req)
				So(AsError(err).Kind.HTTPStatus(), ShouldEqual, 400)
			}
			So(provider.calls, ShouldEqual, 0)
			So(backend.uploadCalls, ShouldEqual, 0)
			So(backend.generateCalls, ShouldEqual, 0)
			So(recorder.records, ShouldBeEmpty)
		})

		Convey("temperature 越界在远端调用前被拒绝", func() {
			for _, temp := range []float64{1.5, -0.1} {
				_, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi"), Temperature: ptr(temp)})
				So(AsError(err).Kind, ShouldEqual, KindValidation)
			}
			So(backend.uploadCalls, ShouldEqual, 0)
			So(backend.generateCalls, ShouldEqual, 0)
		})

		Convey("上传失败不影响生成", func() {
			backend.uploadErrs = []error{errors.New("boom"), errors.New("boom")}
			resp, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi")})
			So(err, ShouldBeNil)
			So(resp.Response, ShouldNotBeEmpty)
			So(backend.lastRequest.Turns, ShouldHaveLength, 1)
			So(recorder.records[0].ContextMode, ShouldEqual, model.ContextPromptOnly)
		})

		Convey("后端无法初始化时返回 service_misconfigured", func() {
			provider.err = ai.ErrNotConfigured
			provider.backend = nil
			_, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi")})
			e := AsError(err)
			So(e.Kind, ShouldEqual, KindServiceMisconfigured)
			So(e.Kind.HTTPStatus(), ShouldEqual, 500)
			So(recorder.records[0].Status, ShouldEqual, model.RecordStatusFailed)
			So(recorder.records[0].ErrorKind, ShouldEqual, string(KindServiceMisconfigured))
		})

		Convey("被拦截时返回 blocked_prompt", func() {
			backend.recvErrAt = 0
			backend.recvErr = &ai.BlockedError{Reason: "SAFETY"}
			_, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi")})
			e := AsError(err)
			So(e.Kind, ShouldEqual, KindBlockedPrompt)
			So(e.Reason, ShouldEqual, "SAFETY")
			So(backend.recvCalls, ShouldEqual, 1)
		})

		Convey("生成日志写入失败不影响响应", func() {
			recorder.err = errors.New("mongo down")
			resp, err := svc.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi")})
			So(err, ShouldBeNil)
			So(resp.Response, ShouldNotBeEmpty)
			So(recorder.records, ShouldHaveLength, 1)
		})

		Convey("没有 recorder 时正常工作", func() {
			s, _ := newTestService(backend, store, nil)
			resp, err := s.Generate(ctx, &model.GenerateRequest{Prompt: ptr("hi"), Model: "gemini-1.5-pro"})
			So(err, ShouldBeNil)
			So(resp.Model, ShouldEqual, "gemini-1.5-pro")
		})
	})
}
