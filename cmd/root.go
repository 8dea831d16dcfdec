package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"veritas/internal/config"
	"veritas/internal/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "veritas",
	Short: "Veritas - University AI generation service",
	Long: `Veritas forwards prompts to a hosted LLM (Gemini by default),
attaching the university reference document as conversation context.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./configs/config.yaml)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.veritas")
	}

	// 环境变量设置
	viper.SetEnvPrefix("VERITAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 设置默认值
	setDefaults()

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Fprintln(os.Stderr, "No config file found, using defaults and environment variables")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
			os.Exit(1)
		}
	}

	// 反序列化到结构体
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "5m")

	// AI
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.api_key", "")
	viper.SetDefault("ai.model", "gemini-1.5-flash")
	viper.SetDefault("ai.base_url", "")
	viper.SetDefault("ai.system_instruction", defaultSystemInstruction)
	viper.SetDefault("ai.upload_timeout", "60s")
	viper.SetDefault("ai.generate_timeout", "120s")
	viper.SetDefault("ai.upload_retries", 1)
	viper.SetDefault("ai.upload_backoff", "500ms")
	viper.SetDefault("ai.options.temperature", 0.9)
	viper.SetDefault("ai.options.top_p", 0.95)
	viper.SetDefault("ai.options.top_k", 64)
	viper.SetDefault("ai.options.max_output_tokens", 8192)
	viper.SetDefault("ai.options.response_mime_type", "text/plain")

	// 参考文档
	viper.SetDefault("reference.key", "veritas_data.pdf")

	// Storage
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.base_path", "./data")

	// Log
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.time_format", "RFC3339")

	// MongoDB（为空时不记录生成日志）
	viper.SetDefault("mongo.uri", "")
	viper.SetDefault("mongo.database", "veritas")
	viper.SetDefault("mongo.max_pool_size", 100)
	viper.SetDefault("mongo.min_pool_size", 10)

	// Redis（为空时不限流）
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)

	// 限流
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.qps", 5)
}

const defaultSystemInstruction = "You are an AI chatbot for Veritas University Abuja. " +
	"Answer respectfully and accurately based on the provided document. " +
	"If the answer isn't in the document, state that you don't have that information."

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}
