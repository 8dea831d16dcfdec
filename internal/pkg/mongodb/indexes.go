package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"veritas/internal/model/generation"
)

// EnsureIndexes 创建所有模型的索引
// 应用启动时调用，模型通过 Model 接口声明自己的集合与索引
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	models := []Model{
		&generation.Record{},
	}

	return EnsureAllIndexes(ctx, db, models...)
}
