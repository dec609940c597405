package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"ai-assessment/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const migrationSuffix = ".up.sql"

// ORA-00955: name is already used by an existing object
const oraNameInUse = "ORA-00955"

const createVersionTable = `CREATE TABLE schema_migrations (
    version    VARCHAR2(255) NOT NULL,
    applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT pk_schema_migrations PRIMARY KEY (version)
)`

// RunMigrations executes every *.up.sql file of fsys in name order, skipping
// the ones already recorded in schema_migrations. It returns the applied names.
func RunMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	log := logger.Get()

	if _, err := db.ExecContext(ctx, createVersionTable); err != nil && !strings.Contains(err.Error(), oraNameInUse) {
		return nil, fmt.Errorf("could not create schema_migrations: %w", err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("could not read schema_migrations: %w", err)
	}
	applied := make(map[string]bool, len(done))
	for _, v := range done {
		applied[v] = true
	}

	names, err := fs.Glob(fsys, "*"+migrationSuffix)
	if err != nil {
		return nil, fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(names)

	var ran []string
	for _, name := range names {
		version := strings.TrimSuffix(name, migrationSuffix)
		if applied[version] {
			log.Debug("Skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return ran, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return ran, fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, version); err != nil {
			return ran, fmt.Errorf("could not record migration %s: %w", name, err)
		}

		log.Info("Executed migration", zap.String("file", name))
		ran = append(ran, version)
	}

	log.Info("Migrations completed successfully", zap.Int("applied", len(ran)))
	return ran, nil
}
