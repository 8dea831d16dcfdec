package storagefactory

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/config"
)

func TestNewStorage(t *testing.T) {
	Convey("NewStorage 根据配置创建存储", t, func() {
		ctx := context.Background()

		Convey("本地存储", func() {
			s, err := NewStorage(ctx, &config.StorageConfig{
				Type:  "local",
				Local: &config.LocalConfig{BasePath: t.TempDir()},
			})
			So(err, ShouldBeNil)
			So(s.GetStorageType(), ShouldEqual, "local")
		})

		Convey("未配置 local 时使用当前目录", func() {
			s, err := NewStorage(ctx, &config.StorageConfig{Type: "local"})
			So(err, ShouldBeNil)
			So(s, ShouldNotBeNil)
		})

		Convey("OSS 缺少配置", func() {
			s, err := NewStorage(ctx, &config.StorageConfig{Type: "oss"})
			So(err, ShouldNotBeNil)
			So(s, ShouldBeNil)
		})

		Convey("不支持的存储类型", func() {
			s, err := NewStorage(ctx, &config.StorageConfig{Type: "invalid"})
			So(err, ShouldNotBeNil)
			So(s, ShouldBeNil)
		})
	})
}
