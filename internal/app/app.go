package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/peacelens/transcript-scorer/api/v1"
	"github.com/peacelens/transcript-scorer/internal/classifier"
	"github.com/peacelens/transcript-scorer/internal/config"
	"github.com/peacelens/transcript-scorer/internal/emotion"
	handler "github.com/peacelens/transcript-scorer/internal/grpc"
	"github.com/peacelens/transcript-scorer/internal/llm"
	"github.com/peacelens/transcript-scorer/internal/repository"
	"github.com/peacelens/transcript-scorer/internal/scoring"
	"github.com/peacelens/transcript-scorer/internal/valence"
	"github.com/peacelens/transcript-scorer/pkg/cache"
	dbbuilder "github.com/peacelens/transcript-scorer/pkg/database"
	grpcsrv "github.com/peacelens/transcript-scorer/pkg/grpc/server"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := emotion.ValidateVocabulary(); err != nil {
		return nil, fmt.Errorf("vocabulary check failed: %w", err)
	}

	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	scoreRepo := repository.NewScoreRepository(dbPool)
	if err := scoreRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	rubric := valence.DefaultRubric
	if cfg.ValenceRubricPath != "" {
		rubric, err = valence.LoadRubric(cfg.ValenceRubricPath)
		if err != nil {
			return nil, fmt.Errorf("rubric load failed: %w", err)
		}
		logger.Info("Valence rubric overridden", zap.String("path", cfg.ValenceRubricPath))
	}
	valenceScorer, err := valence.NewScorer(rubric, logger)
	if err != nil {
		return nil, fmt.Errorf("valence scorer init failed: %w", err)
	}

	emotionModel := classifier.NewHTTPAdapter(cfg.ClassifierURL, cfg.ClassifierModel, logger)
	aggregator := emotion.NewAggregator(emotionModel, logger)

	analyzer := llm.NewClient(llm.Config{
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		GeminiBaseURL: cfg.GeminiBaseURL,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
	}, logger)

	scoringService := scoring.NewService(aggregator, analyzer, valenceScorer, scoreRepo, logger)

	grpcHandlers := handler.NewHandlers(scoringService, cacheClient, logger, 10*time.Minute)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterTranscriptScoringServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown incomplete", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
