package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"checkout_hub/pkg/logger"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate runs a goose command ("up", "down", "status", ...) against db using
// the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MaybeAutoMigrate applies pending migrations at startup when enabled.
func MaybeAutoMigrate(ctx context.Context, enabled bool, db *sql.DB, log *logger.Logger) error {
	if !enabled {
		return nil
	}
	log.Info(ctx, "[database] running goose migrations (auto-run)")
	if err := Migrate(ctx, db, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	log.Info(ctx, "[database] goose migrations completed")
	return nil
}
