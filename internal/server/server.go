package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "veritas/docs"
	"veritas/internal/ai"
	"veritas/internal/config"
	"veritas/internal/handler"
	generationHandler "veritas/internal/handler/generation"
	"veritas/internal/pkg/cache"
	"veritas/internal/pkg/mongodb"
	"veritas/internal/pkg/storage"
	"veritas/internal/pkg/storagefactory"
	generationRepo "veritas/internal/repository/generation"
	"veritas/internal/server/middleware"
	generationService "veritas/internal/service/generation"
)

// Server HTTP 服务器
type Server struct {
	cfg      *config.Config
	engine   *gin.Engine
	mongo    *mongodb.Client
	redis    *cache.RedisCache
	provider *ai.Provider
	service  *generationService.Service
	records  *generationRepo.GenerationRepo
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	// 初始化 MongoDB (可选，用于生成日志)
	var mongoClient *mongodb.Client
	if cfg.Mongo.URI != "" {
		client, err := mongodb.New(&cfg.Mongo)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to MongoDB, continuing without generation log")
		} else {
			mongoClient = client
			log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

			// 创建索引
			if err := mongodb.EnsureIndexes(mongoClient.Database()); err != nil {
				log.Warn().Err(err).Msg("failed to ensure indexes")
			}
		}
	}

	// 初始化 Redis (可选，用于限流)
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without rate limiting")
		} else {
			redisCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
	}

	// 参考文档存储，不可用时生成流程退化为仅提示词
	store, err := storagefactory.NewStorage(context.Background(), &cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Str("type", cfg.Storage.Type).Msg("failed to initialize storage, reference document disabled")
	}

	var (
		records  *generationRepo.GenerationRepo
		recorder generationService.Recorder
	)
	if mongoClient != nil {
		records = generationRepo.NewGenerationRepo(mongoClient.Database())
		recorder = records
	}

	svc, provider := NewPipeline(cfg, store, recorder)

	srv := &Server{
		cfg:      cfg,
		engine:   engine,
		mongo:    mongoClient,
		redis:    redisCache,
		provider: provider,
		service:  svc,
		records:  records,
	}

	// 设置路由
	srv.setupRoutes()

	return srv, nil
}

// NewPipeline 组装生成流程
// AI 后端在第一次请求时才初始化；recorder 为 nil 时不记录生成日志
func NewPipeline(cfg *config.Config, store storage.Storage, recorder generationService.Recorder) (*generationService.Service, *ai.Provider) {
	aiCfg := &cfg.AI
	provider := ai.NewProvider(func(ctx context.Context) (ai.Backend, error) {
		return ai.NewBackend(ctx, aiCfg)
	})

	svc := generationService.NewService(
		generationService.NewRequestValidator(aiCfg.Model),
		generationService.NewContextBuilder(store, cfg.Reference.Key, aiCfg),
		generationService.NewGenerationClient(aiCfg),
		provider,
		recorder,
	)
	return svc, provider
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.Metrics())
	s.engine.Use(middleware.CORS())

	// 健康检查
	deps := map[string]handler.Pinger{}
	if s.mongo != nil {
		deps["mongo"] = s.mongo
	}
	if s.redis != nil {
		deps["redis"] = s.redis
	}
	healthHandler := handler.NewHealthHandler(deps)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// 监控指标
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var recordReader generationHandler.RecordReader
	if s.records != nil {
		recordReader = s.records
	}
	genHdl := generationHandler.NewHandler(s.service, recordReader)

	// 生成接口（两个路径等价）
	generate := s.engine.Group("")
	if s.cfg.RateLimit.Enabled {
		if s.redis != nil {
			generate.Use(middleware.RateLimit(s.redis, s.cfg.RateLimit.QPS))
		} else {
			log.Warn().Msg("rate limiting enabled but Redis is not available, skipping")
		}
	}
	generate.POST("/generate/", genHdl.Generate)
	generate.POST("/api/ai/generate/", genHdl.Generate)

	// 生成日志（只读）
	if s.records != nil {
		api := s.engine.Group("/api/ai")
		api.GET("/generations", genHdl.ListGenerations)
		api.GET("/generations/:generation_id", genHdl.GetGeneration)
	} else {
		log.Warn().Msg("MongoDB not configured, generation log endpoints disabled")
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		err := srv.Shutdown(context.Background())
		s.Close()
		return err
	case err := <-errCh:
		s.Close()
		return err
	}
}

// Close 关闭外部连接
func (s *Server) Close() {
	if err := s.provider.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close AI backend")
	}
	if s.mongo != nil {
		if err := s.mongo.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close MongoDB connection")
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis connection")
		}
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
