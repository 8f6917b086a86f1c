package bootstrap

import (
	"context"
	"log/slog"

	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool for the postgres driver. The memory driver gets a nil pool.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return nil, nil
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(cfg.DB); err != nil {
			return nil, err
		}
		logger.Info("マイグレーションを適用しました", "database", cfg.DB.DBName)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
