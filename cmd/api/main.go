// @title AI Self-Assessment API
// @version 1.0
// @description Scoring, submission and cohort statistics for the AI self-assessment survey.
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ai-assessment/internal/adapter"
	"ai-assessment/internal/cache"
	"ai-assessment/internal/config"
	"ai-assessment/internal/database"
	"ai-assessment/internal/domain"
	"ai-assessment/internal/handler"
	"ai-assessment/internal/logger"
	"ai-assessment/internal/middleware"
	"ai-assessment/internal/repository"
	"ai-assessment/internal/service"

	_ "ai-assessment/cmd/api/docs"

	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	connectTimeout  = 10 * time.Second
)

// store is the record store picked at startup plus its release function.
type store struct {
	repo  domain.AssessmentRepository
	close func(ctx context.Context) error
}

func openStore(cfg *config.Config) (*store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendLegacy:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		repo := repository.NewAssessmentMongoAdapter(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		if err := repo.Ping(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		if err := repo.(*repository.AssessmentMongoAdapter).EnsureIndexes(ctx); err != nil {
			logger.Get().Warn("Failed to ensure MongoDB indexes", zap.Error(err))
		}
		return &store{repo: repo, close: client.Disconnect}, nil

	default:
		db, err := database.NewSQLXOracleDB(cfg.GetDSN(), cfg.DB)
		if err != nil {
			return nil, err
		}
		tm := repository.NewTransactionManagerAdapter(db)
		return &store{
			repo:  repository.NewAssessmentDatabaseAdapter(db, tm),
			close: func(context.Context) error { return db.Close() },
		}, nil
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	st, err := openStore(cfg)
	if err != nil {
		appLogger.Fatal("Failed to open record store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	appLogger.Info("Record store ready", zap.String("backend", cfg.Storage.Backend))

	// Redis is optional. Without it statistics are not cached and the
	// submission limiter keeps its counters in process memory.
	var (
		redisClient  *redis.Client
		cacheAdapter domain.Cache
	)
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Error("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	metrics := middleware.NewMetrics()
	statsCache := service.NewStatsCacheService(cacheAdapter, cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Stats, 30*time.Second))
	assessmentService := service.NewAssessmentService(st.repo, statsCache, metrics)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		UnescapePath: true,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{CrossOriginEmbedderPolicy: "unsafe-none"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Handler())

	app.Get("/metrics", metrics.Exposition())
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handler.Routes{
		Assessments:   handler.NewAssessmentHandler(assessmentService),
		Health:        handler.NewHealthHandler(st.repo, cacheAdapter),
		SubmitLimiter: middleware.SubmissionRateLimiter(cacheAdapter, cfg.RateLimit),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := st.close(ctx); err != nil {
		appLogger.Error("Failed to close record store", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("Failed to close Redis client", zap.Error(err))
		}
	}
	appLogger.Info("Server exited gracefully")
}
