package mongodb

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeModel struct {
	name  string
	err   error
	calls *[]string
}

func (m fakeModel) Collection() string { return m.name }

func (m fakeModel) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	*m.calls = append(*m.calls, m.name)
	return m.err
}

func TestEnsureAllIndexes(t *testing.T) {
	Convey("EnsureAllIndexes 依次创建索引", t, func() {
		var calls []string

		err := EnsureAllIndexes(context.Background(), nil,
			fakeModel{name: "a", calls: &calls},
			fakeModel{name: "b", calls: &calls},
		)
		So(err, ShouldBeNil)
		So(calls, ShouldResemble, []string{"a", "b"})

		Convey("遇到错误立即返回", func() {
			calls = nil
			err := EnsureAllIndexes(context.Background(), nil,
				fakeModel{name: "a", err: errors.New("boom"), calls: &calls},
				fakeModel{name: "b", calls: &calls},
			)
			So(err, ShouldNotBeNil)
			So(calls, ShouldResemble, []string{"a"})
		})
	})
}
