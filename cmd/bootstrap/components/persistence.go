package components

import (
	"log/slog"

	"lab-reservation/internal/infra/persistence/memory"
	"lab-reservation/internal/infra/readstore"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/infra/uow"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the store selected by STORE_DRIVER.
type Persistence struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Reservations queries.ReservationReadStore
	Usage        queries.UsageReadStore
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return newMemoryPersistence(cfg.Store, logger)
	}
	return newPostgresPersistence(cfg, pool), nil
}

func newPostgresPersistence(cfg config.Config, pool *pgxpool.Pool) Persistence {
	q := NewSQLQueries(pool)
	db := NewDBTX(pool)
	return Persistence{
		UnitOfWork:   uow.NewPostgresUoW(pool, q, cfg.Admission.MaxTxRetries),
		Reservations: readstore.NewReservationReadStore(q, db),
		Usage:        readstore.NewUsageReadStore(q, db),
	}
}

func newMemoryPersistence(cfg config.StoreConfig, logger *slog.Logger) (Persistence, error) {
	store := memory.NewStore()
	if cfg.SeedPath != "" {
		f, err := memory.LoadFixture(cfg.SeedPath)
		if err != nil {
			return Persistence{}, err
		}
		store.Seed(f)
		logger.Info("メモリストアにシードを投入しました",
			"path", cfg.SeedPath,
			"laboratories", len(f.Laboratories),
			"devices", len(f.Devices),
		)
	}
	return Persistence{
		UnitOfWork:   store,
		Reservations: store,
		Usage:        store,
	}, nil
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
