package generation

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record 生成日志实体
// 每次通过校验的生成请求写入一条，只追加不修改
type Record struct {
	ID          string       `bson:"id" json:"id"`                                     // 记录ID（UUID）
	RequestID   string       `bson:"request_id,omitempty" json:"request_id,omitempty"` // HTTP 请求ID
	Prompt      string       `bson:"prompt" json:"prompt"`                             // 用户提示词
	Model       string       `bson:"model" json:"model"`                               // 使用的模型
	Params      Params       `bson:"params" json:"params"`                             // 调用方指定的采样参数
	ContextMode ContextMode  `bson:"context_mode,omitempty" json:"context_mode,omitempty"`
	Status      RecordStatus `bson:"status" json:"status"`
	Response    string       `bson:"response,omitempty" json:"response,omitempty"`     // 生成结果（成功时）
	ErrorKind   string       `bson:"error_kind,omitempty" json:"error_kind,omitempty"` // 错误类型（失败时）
	Usage       *TokenUsage  `bson:"usage,omitempty" json:"usage,omitempty"`
	LatencyMs   int64        `bson:"latency_ms" json:"latency_ms"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}

// RecordStatus 生成状态
type RecordStatus string

const (
	RecordStatusSucceeded RecordStatus = "succeeded"
	RecordStatusFailed    RecordStatus = "failed"
)

// Collection 返回集合名称
func (r *Record) Collection() string {
	return "generations"
}

// EnsureIndexes 创建和维护索引
func (r *Record) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(r.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_id").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created"),
		},
		{
			Keys:    bson.D{bson.E{Key: "status", Value: 1}, bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_status_created"),
		},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
