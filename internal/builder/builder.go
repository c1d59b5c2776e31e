package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"docqa-backend/internal/api"
	chatapi "docqa-backend/internal/api/chat"
	documentapi "docqa-backend/internal/api/document"
	questionapi "docqa-backend/internal/api/question"
	statsapi "docqa-backend/internal/api/stats"
	"docqa-backend/internal/config"
	"docqa-backend/internal/integration/embedding"
	"docqa-backend/internal/integration/generation"
	"docqa-backend/internal/pkg/chunker"
	"docqa-backend/internal/pkg/formatter"
	"docqa-backend/internal/registry"
	"docqa-backend/internal/repository"
	"docqa-backend/internal/storage"
	chatuc "docqa-backend/internal/usecase/chat"
	documentuc "docqa-backend/internal/usecase/document"
	questionuc "docqa-backend/internal/usecase/question"
	statsuc "docqa-backend/internal/usecase/stats"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserPostgres(db)
	chatRepo := repository.NewChatPostgres(db)
	documentRepo := repository.NewDocumentPostgres(db)
	segmentRepo := repository.NewSegmentPostgres(db)
	questionRepo := repository.NewQuestionPostgres(db)
	statsRepo := repository.NewStatsPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize uploaded file storage
	store, err := storage.New(cfg.StorageCfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup storage: %w", err)
	}
	logger.Info("Storage initialized", zap.String("driver", cfg.StorageCfg.Driver))

	// Initialize model service connectors (with mock support)
	var embedder documentuc.Embedder
	var generator questionuc.Generator

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for model services")
		embedder = embedding.NewMockConnector(cfg.EmbeddingConnectorCfg.Dimension, logger)
		generator = generation.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for model services")
		embedder = embedding.NewConnector(cfg.EmbeddingConnectorCfg, logger)
		generator = generation.NewConnector(cfg.GenerationConnectorCfg, logger)
	}

	modelRegistry := registry.Default()

	// Initialize use cases
	chatUC := chatuc.NewUsecase(
		chatRepo,
		questionRepo,
		formatter.NewFactory(),
		logger,
	)

	documentUC := documentuc.NewUsecase(
		documentRepo,
		store,
		embedder,
		chunker.New(cfg.ChunkSize, cfg.ChunkOverlap),
		cfg.FileUploadCfg.MaxFileSize,
		logger,
	)

	questionUC := questionuc.NewUsecase(
		chatRepo,
		questionRepo,
		segmentRepo,
		statsRepo,
		modelRegistry,
		embedder,
		generator,
		cfg.RetrievalTopK,
		logger,
	)

	statsUC := statsuc.NewUsecase(statsRepo, modelRegistry, logger)
	logger.Info("Use cases initialized")

	// Setup router
	router := api.SetupRouter(api.RouterConfig{
		ChatHandler:     chatapi.NewHandler(chatUC),
		DocumentHandler: documentapi.NewHandler(documentUC, cfg.FileUploadCfg),
		QuestionHandler: questionapi.NewHandler(questionUC, modelRegistry),
		StatsHandler:    statsapi.NewHandler(statsUC),
		UserRepo:        userRepo,
		UserCacheTTL:    cfg.UserCacheTTL,
		UserCacheSweep:  cfg.UserCacheCleanup,
		Logger:          logger,
	})
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		// Write timeout must outlast the slowest generation request.
		WriteTimeout: 6 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// BuildUserTool wires just enough of the application for the user management
// CLI: configuration, logger, database, and the user repository.
func BuildUserTool() (*UserTool, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &UserTool{
		Users:  repository.NewUserPostgres(db),
		db:     db,
		logger: logger,
	}, nil
}
