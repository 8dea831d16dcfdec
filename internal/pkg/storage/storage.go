package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound 文件不存在
var ErrNotFound = errors.New("file not found")

// Storage 存储接口
// 服务只读取参考文档，不向存储写入
type Storage interface {
	// Download 下载文件，调用方负责关闭
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists 检查文件是否存在
	Exists(ctx context.Context, key string) (bool, error)

	// GetFileInfo 获取文件信息
	GetFileInfo(ctx context.Context, key string) (*FileInfo, error)

	// GetStorageType 获取存储类型
	GetStorageType() string
}

// FileInfo 文件信息
type FileInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// StorageType 存储类型
type StorageType string

const (
	StorageTypeLocal StorageType = "local" // 本地文件系统
	StorageTypeOSS   StorageType = "oss"   // 阿里云OSS
)
