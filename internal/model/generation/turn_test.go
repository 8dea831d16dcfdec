package generation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTurn_Text(t *testing.T) {
	Convey("Turn.Text 只拼接文本片段", t, func() {
		turn := Turn{
			Role: RoleUser,
			Parts: []Part{
				FilePart("https://files.example/abc", "application/pdf"),
				TextPart("This is "),
				TextPart("some data"),
			},
		}
		So(turn.Text(), ShouldEqual, "This is some data")

		Convey("没有文本片段时返回空串", func() {
			So(Turn{Role: RoleModel}.Text(), ShouldBeEmpty)
		})
	})
}
