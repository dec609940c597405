package main

import (
	"context"
	"log"
	"time"

	"ai-assessment/database/migrations"
	"ai-assessment/internal/config"
	"ai-assessment/internal/database"
	"ai-assessment/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer l.Sync()

	if cfg.Storage.Backend != config.StorageBackendPrimary {
		l.Info("Storage backend has no SQL schema, nothing to migrate", zap.String("backend", cfg.Storage.Backend))
		return
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := database.RunMigrations(ctx, db, migrations.FS); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
