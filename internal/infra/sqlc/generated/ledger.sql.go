// Statements from queries/ledger.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const acquireSlotLock = `-- name: AcquireSlotLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) AcquireSlotLock(ctx context.Context, db DBTX, slotKey string) error {
	_, err := db.Exec(ctx, acquireSlotLock, slotKey)
	return err
}

const addDeviceUsage = `-- name: AddDeviceUsage :execrows
UPDATE devices
SET current_minutes = current_minutes + $1,
    total_minutes = total_minutes + $1
WHERE id = $2
`

type AddDeviceUsageParams struct {
	Minutes int64     `json:"minutes"`
	ID      uuid.UUID `json:"id"`
}

func (q *Queries) AddDeviceUsage(ctx context.Context, db DBTX, arg AddDeviceUsageParams) (int64, error) {
	result, err := db.Exec(ctx, addDeviceUsage, arg.Minutes, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const addExperimentCompleted = `-- name: AddExperimentCompleted :execrows
UPDATE experiments
SET completed_count = completed_count + $1
WHERE id = $2
`

type AddExperimentCompletedParams struct {
	Runs int32     `json:"runs"`
	ID   uuid.UUID `json:"id"`
}

func (q *Queries) AddExperimentCompleted(ctx context.Context, db DBTX, arg AddExperimentCompletedParams) (int64, error) {
	result, err := db.Exec(ctx, addExperimentCompleted, arg.Runs, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const addLaboratoryUsage = `-- name: AddLaboratoryUsage :execrows
UPDATE laboratories
SET usage_minutes = usage_minutes + $1,
    operating_minutes = operating_minutes + $1
WHERE id = $2
`

type AddLaboratoryUsageParams struct {
	Minutes int64     `json:"minutes"`
	ID      uuid.UUID `json:"id"`
}

func (q *Queries) AddLaboratoryUsage(ctx context.Context, db DBTX, arg AddLaboratoryUsageParams) (int64, error) {
	result, err := db.Exec(ctx, addLaboratoryUsage, arg.Minutes, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
