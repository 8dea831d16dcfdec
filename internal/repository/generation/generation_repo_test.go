package generation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"veritas/internal/model/generation"
)

func TestListFilter(t *testing.T) {
	Convey("listFilter 按状态过滤", t, func() {
		So(listFilter(""), ShouldBeEmpty)

		filter := listFilter(generation.RecordStatusFailed)
		So(filter, ShouldContainKey, "status")
		So(filter["status"], ShouldEqual, generation.RecordStatusFailed)
	})
}
