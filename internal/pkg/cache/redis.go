package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"veritas/internal/config"
)

// windowScript 原子地自增计数并设置窗口过期时间
// key 没有过期时间时（例如旧版本遗留）同样补上，避免计数永不重置
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 or redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RedisCache Redis 缓存封装
type RedisCache struct {
	client   *redis.Client
	scripter redis.Scripter
}

// NewRedisCache 创建 Redis 缓存客户端
func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewFromClient(client), nil
}

// NewFromClient 使用已有客户端创建（测试或共享连接时使用）
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, scripter: client}
}

// IncrWindow 固定窗口计数
// 自增与设置过期时间在同一个 Lua 脚本中执行
func (c *RedisCache) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return windowScript.Run(ctx, c.scripter, []string{key}, ms).Int64()
}

// Ping 检查连接
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close 关闭连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// 常用 key 模式
const (
	RateLimitKeyPrefix = "veritas:rate_limit:"
)

// RateLimitKey 生成限流 key
func RateLimitKey(clientIP string) string {
	return RateLimitKeyPrefix + clientIP
}
