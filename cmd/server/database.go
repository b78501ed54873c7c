package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/commboard-api/internal/config"
	"github.com/phrazzld/commboard-api/internal/platform/postgres"
	"github.com/phrazzld/commboard-api/internal/redact"
)

// openDatabase opens the Postgres connection pool, verifies connectivity,
// and applies any pending schema migrations.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %s", redact.Error(err))
	}
	logger.Info("Database connection established")

	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("Database migrations applied")

	return db, nil
}
