package id

import (
	"github.com/google/uuid"
)

// New 生成新的UUID（string格式），用于生成记录ID和请求ID
func New() string {
	return uuid.New().String()
}

// IsValid 验证UUID格式是否有效
// 查询接口在访问数据库前先用它过滤明显非法的ID
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
