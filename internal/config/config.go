package config

import (
	"errors"
	"time"
)

// Config 应用配置根结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	AI        AIConfig        `mapstructure:"ai"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AIConfig AI 服务配置
type AIConfig struct {
	Provider          string          `mapstructure:"provider"` // gemini, openai, azure, ark
	APIKey            string          `mapstructure:"api_key"`
	Model             string          `mapstructure:"model"` // 请求未指定 model 时使用
	BaseURL           string          `mapstructure:"base_url"`
	SystemInstruction string          `mapstructure:"system_instruction"`
	UploadTimeout     time.Duration   `mapstructure:"upload_timeout"`   // 单次上传参考文档的超时
	GenerateTimeout   time.Duration   `mapstructure:"generate_timeout"` // 生成调用（含流式读取）的超时
	UploadRetries     int             `mapstructure:"upload_retries"`   // 上传失败后的重试次数（最多 1 次）
	UploadBackoff     time.Duration   `mapstructure:"upload_backoff"`
	Options           AIOptionsConfig `mapstructure:"options"`
}

// AIOptionsConfig 采样参数默认值（请求未提供时使用）
type AIOptionsConfig struct {
	Temperature      float64 `mapstructure:"temperature"`
	TopP             float64 `mapstructure:"top_p"`
	TopK             int     `mapstructure:"top_k"`
	MaxOutputTokens  int     `mapstructure:"max_output_tokens"`
	ResponseMIMEType string  `mapstructure:"response_mime_type"`
}

// ReferenceConfig 参考文档配置
// Key 是参考文档在 Storage 中的路径，为空表示不附带参考文档
type ReferenceConfig struct {
	Key string `mapstructure:"key"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// MongoConfig MongoDB 配置
type MongoConfig struct {
	URI         string `mapstructure:"uri"`
	Database    string `mapstructure:"database"`
	MaxPoolSize uint64 `mapstructure:"max_pool_size"`
	MinPoolSize uint64 `mapstructure:"min_pool_size"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig 生成接口限流配置（依赖 Redis）
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	QPS     int  `mapstructure:"qps"` // 每个客户端 IP 每秒允许的请求数
}

// StorageConfig 存储配置
type StorageConfig struct {
	Type  string       `mapstructure:"type"` // local, oss
	Local *LocalConfig `mapstructure:"local,omitempty"`
	OSS   *OSSConfig   `mapstructure:"oss,omitempty"`
}

// LocalConfig 本地文件系统配置
type LocalConfig struct {
	BasePath string `mapstructure:"base_path"` // 基础路径
}

// OSSConfig 阿里云OSS配置
type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`          // OSS端点
	Bucket          string `mapstructure:"bucket"`            // Bucket名称
	AccessKeyID     string `mapstructure:"access_key_id"`     // AccessKey ID
	AccessKeySecret string `mapstructure:"access_key_secret"` // AccessKey Secret
}

// Validate 验证配置有效性
// 注意: 不校验 AI.APIKey，缺失时服务仍可启动，生成请求返回 service_misconfigured
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	opts := c.AI.Options
	if opts.Temperature < 0 || opts.Temperature > 1 {
		return errors.New("ai.options.temperature must be within [0, 1]")
	}
	if opts.TopP < 0 || opts.TopP > 1 {
		return errors.New("ai.options.top_p must be within [0, 1]")
	}
	if opts.TopK < 1 {
		return errors.New("ai.options.top_k must be >= 1")
	}
	if opts.MaxOutputTokens < 1 {
		return errors.New("ai.options.max_output_tokens must be >= 1")
	}

	if c.AI.UploadTimeout <= 0 || c.AI.GenerateTimeout <= 0 {
		return errors.New("ai.upload_timeout and ai.generate_timeout must be positive")
	}
	if c.AI.UploadRetries < 0 || c.AI.UploadRetries > 1 {
		return errors.New("ai.upload_retries must be 0 or 1")
	}

	switch c.Storage.Type {
	case "local", "oss":
	default:
		return errors.New("invalid storage type, must be local/oss")
	}

	if c.RateLimit.Enabled && c.RateLimit.QPS <= 0 {
		return errors.New("rate_limit.qps must be positive when rate limiting is enabled")
	}

	return nil
}
