package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/pkg/storage"
)

func TestLocalStorage(t *testing.T) {
	Convey("LocalStorage 读取参考文档", t, func() {
		ctx := context.Background()
		baseDir := t.TempDir()
		So(os.MkdirAll(filepath.Join(baseDir, "veritas_data"), 0o755), ShouldBeNil)
		content := "Veritas University, Abuja. Seeking the Truth."
		So(os.WriteFile(filepath.Join(baseDir, "veritas_data", "data.txt"), []byte(content), 0o644), ShouldBeNil)

		s, err := NewLocalStorage(baseDir)
		So(err, ShouldBeNil)
		So(s.GetStorageType(), ShouldEqual, "local")

		Convey("存在的文件", func() {
			exists, err := s.Exists(ctx, "veritas_data/data.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			info, err := s.GetFileInfo(ctx, "veritas_data/data.txt")
			So(err, ShouldBeNil)
			So(info.Size, ShouldEqual, len(content))
			So(info.ContentType, ShouldEqual, "text/plain")

			rc, err := s.Download(ctx, "veritas_data/data.txt")
			So(err, ShouldBeNil)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, content)
		})

		Convey("不存在的文件", func() {
			exists, err := s.Exists(ctx, "veritas_data/missing.pdf")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)

			_, err = s.Download(ctx, "veritas_data/missing.pdf")
			So(errors.Is(err, storage.ErrNotFound), ShouldBeTrue)

			_, err = s.GetFileInfo(ctx, "veritas_data/missing.pdf")
			So(errors.Is(err, storage.ErrNotFound), ShouldBeTrue)
		})

		Convey("目录不算作文件", func() {
			exists, err := s.Exists(ctx, "veritas_data")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
