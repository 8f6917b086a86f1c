package repository

import (
	"context"
	"sort"

	"lab-reservation/internal/domain/usage"
	"lab-reservation/internal/infra"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/repository/mock_ledger.go -package=repositorymock

type LedgerWriteQueries interface {
	AddLaboratoryUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.AddLaboratoryUsageParams) (int64, error)
	AddDeviceUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.AddDeviceUsageParams) (int64, error)
	AddExperimentCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.AddExperimentCompletedParams) (int64, error)
}

// LedgerRepository posts counter movements as in-place increments, so concurrent
// postings on the same row never lose updates.
type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{queries: queries, db: db}
}

func (r *LedgerRepository) Post(ctx context.Context, p usage.Posting) error {
	n, err := r.queries.AddLaboratoryUsage(ctx, r.db, sqlc.AddLaboratoryUsageParams{Minutes: p.Minutes, ID: p.LabID})
	if err := affected("laboratory", n, err); err != nil {
		return err
	}

	for _, id := range sortedIDs(p.DeviceIDs) {
		n, err := r.queries.AddDeviceUsage(ctx, r.db, sqlc.AddDeviceUsageParams{Minutes: p.Minutes, ID: id})
		if err := affected("device", n, err); err != nil {
			return err
		}
	}

	// #nosec G115 -- runs is always ±1
	n, err = r.queries.AddExperimentCompleted(ctx, r.db, sqlc.AddExperimentCompletedParams{Runs: int32(p.Runs), ID: p.ExperimentID})
	return affected("experiment", n, err)
}

// sortedIDs gives concurrent postings over shared devices one row update order.
func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	out := append([]uuid.UUID(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

func affected(entity string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr("failed to post "+entity+" usage", err)
	}
	if n == 0 {
		return infra.NotFound(entity + " not found")
	}
	return nil
}

type SlotLockQueries interface {
	AcquireSlotLock(ctx context.Context, db sqlc.DBTX, slotKey string) error
}

// SlotLocker takes transaction-scoped advisory locks, released at commit or rollback.
type SlotLocker struct {
	queries SlotLockQueries
	db      sqlc.DBTX
}

func NewSlotLocker(queries SlotLockQueries, db sqlc.DBTX) *SlotLocker {
	return &SlotLocker{queries: queries, db: db}
}

func (l *SlotLocker) Lock(ctx context.Context, keys ...shared.SlotKey) error {
	for _, k := range shared.SortedKeys(keys) {
		if err := l.queries.AcquireSlotLock(ctx, l.db, k.String()); err != nil {
			return infra.WrapRepoErr("failed to acquire slot lock", err)
		}
	}
	return nil
}
