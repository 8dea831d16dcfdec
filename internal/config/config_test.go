package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000, Mode: "release"},
		AI: AIConfig{
			Provider:        "gemini",
			Model:           "gemini-1.5-flash",
			UploadTimeout:   time.Minute,
			GenerateTimeout: 2 * time.Minute,
			UploadRetries:   1,
			Options: AIOptionsConfig{
				Temperature:     0.9,
				TopP:            0.95,
				TopK:            64,
				MaxOutputTokens: 8192,
			},
		},
		Storage: StorageConfig{Type: "local", Local: &LocalConfig{BasePath: "."}},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Config.Validate 校验配置", t, func() {
		cfg := validConfig()

		Convey("合法配置应通过", func() {
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("缺少 API Key 不影响启动", func() {
			cfg.AI.APIKey = ""
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("端口越界应失败", func() {
			cfg.Server.Port = 70000
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("未知运行模式应失败", func() {
			cfg.Server.Mode = "prod"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("默认 temperature 越界应失败", func() {
			cfg.AI.Options.Temperature = 1.5
			So(cfg.Validate().Error(), ShouldContainSubstring, "temperature")
		})

		Convey("默认 top_k 必须为正", func() {
			cfg.AI.Options.TopK = 0
			So(cfg.Validate().Error(), ShouldContainSubstring, "top_k")
		})

		Convey("超时必须为正", func() {
			cfg.AI.GenerateTimeout = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("上传重试最多一次", func() {
			cfg.AI.UploadRetries = 3
			So(cfg.Validate().Error(), ShouldContainSubstring, "upload_retries")
		})

		Convey("未知存储类型应失败", func() {
			cfg.Storage.Type = "s3"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("启用限流时 qps 必须为正", func() {
			cfg.RateLimit = RateLimitConfig{Enabled: true}
			So(cfg.Validate(), ShouldNotBeNil)
			cfg.RateLimit.QPS = 5
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}
