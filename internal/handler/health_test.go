package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(h gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthHandler(t *testing.T) {
	Convey("HealthHandler", t, func() {
		down := pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })
		up := pingFunc(func(ctx context.Context) error { return nil })

		Convey("Health 不受依赖状态影响", func() {
			h := NewHealthHandler(map[string]Pinger{"mongo": down})
			w := serve(h.Health, "/health")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, `{"status":"ok"}`)
		})

		Convey("Ready 在依赖正常时返回 200", func() {
			h := NewHealthHandler(map[string]Pinger{"mongo": up, "redis": up})
			w := serve(h.Ready, "/ready")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Ready 在依赖异常时返回 503", func() {
			h := NewHealthHandler(map[string]Pinger{"mongo": up, "redis": down})
			w := serve(h.Ready, "/ready")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(w.Body.String(), ShouldContainSubstring, "redis")
		})

		Convey("没有依赖时直接就绪", func() {
			w := serve(NewHealthHandler(nil).Ready, "/ready")
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}
