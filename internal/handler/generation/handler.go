package generation

import (
	"context"

	model "veritas/internal/model/generation"
)

// Generator 生成服务
type Generator interface {
	Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error)
}

// RecordReader 生成日志查询
type RecordReader interface {
	FindByID(ctx context.Context, id string) (*model.Record, error)
	List(ctx context.Context, status model.RecordStatus, limit, offset int) ([]*model.Record, int64, error)
}

// Handler 生成处理器
// 所有生成相关的Handler方法都通过这个结构体访问Service
type Handler struct {
	generator Generator
	records   RecordReader // 未配置 MongoDB 时为 nil
}

// NewHandler 创建生成处理器
func NewHandler(generator Generator, records RecordReader) *Handler {
	return &Handler{
		generator: generator,
		records:   records,
	}
}
