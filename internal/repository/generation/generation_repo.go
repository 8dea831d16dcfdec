package generation

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"veritas/internal/model/generation"
)

// ErrGenerationNotFound 生成记录不存在
var ErrGenerationNotFound = errors.New("generation record not found")

// GenerationRepo 生成日志仓库
// 记录只追加，不提供更新和删除
type GenerationRepo struct {
	collection *mongo.Collection
}

// NewGenerationRepo 创建生成日志仓库
func NewGenerationRepo(db *mongo.Database) *GenerationRepo {
	var rec generation.Record
	return &GenerationRepo{
		collection: db.Collection(rec.Collection()),
	}
}

// Create 写入生成记录
func (r *GenerationRepo) Create(ctx context.Context, rec *generation.Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

// FindByID 根据ID查询
func (r *GenerationRepo) FindByID(ctx context.Context, id string) (*generation.Record, error) {
	var rec generation.Record
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGenerationNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List 按创建时间倒序查询，status 为空时不过滤
func (r *GenerationRepo) List(ctx context.Context, status generation.RecordStatus, limit, offset int) ([]*generation.Record, int64, error) {
	filter := listFilter(status)

	// 查询总数
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 查询列表
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	records := make([]*generation.Record, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func listFilter(status generation.RecordStatus) bson.M {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return filter
}
