package db

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/infra/migrations"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/pressly/goose/v3"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database")
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	return pool, pool.Close, nil
}

// Migrate applies the embedded migrations through a short-lived database/sql handle.
func Migrate(cfg config.DBConfig) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.BuildDSN())
	if err != nil {
		return errs.Wrap(err, "failed to open migration connection")
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close migration connection", "error", err.Error())
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set migration dialect")
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}
