// Statements from queries/catalog.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getDeviceByID = `-- name: GetDeviceByID :one
SELECT id, name, category, status, current_minutes, total_minutes,
       purchase_date, purchase_cost_cents, lifespan_years
FROM devices
WHERE id = $1
`

func (q *Queries) GetDeviceByID(ctx context.Context, db DBTX, id uuid.UUID) (Device, error) {
	row := db.QueryRow(ctx, getDeviceByID, id)
	var i Device
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.Status,
		&i.CurrentMinutes,
		&i.TotalMinutes,
		&i.PurchaseDate,
		&i.PurchaseCostCents,
		&i.LifespanYears,
	)
	return i, err
}

const getExperimentByID = `-- name: GetExperimentByID :one
SELECT id, name, category, lab_id, completed_count
FROM experiments
WHERE id = $1
`

func (q *Queries) GetExperimentByID(ctx context.Context, db DBTX, id uuid.UUID) (Experiment, error) {
	row := db.QueryRow(ctx, getExperimentByID, id)
	var i Experiment
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.LabID,
		&i.CompletedCount,
	)
	return i, err
}

const getLaboratoryByID = `-- name: GetLaboratoryByID :one
SELECT id, name, category, status, usage_minutes, operating_minutes
FROM laboratories
WHERE id = $1
`

func (q *Queries) GetLaboratoryByID(ctx context.Context, db DBTX, id uuid.UUID) (Laboratory, error) {
	row := db.QueryRow(ctx, getLaboratoryByID, id)
	var i Laboratory
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.Status,
		&i.UsageMinutes,
		&i.OperatingMinutes,
	)
	return i, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT id, name, role
FROM users
WHERE id = $1
`

type GetUserByIDRow struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (GetUserByIDRow, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var i GetUserByIDRow
	err := row.Scan(&i.ID, &i.Name, &i.Role)
	return i, err
}

const isDeviceLinkedToExperiment = `-- name: IsDeviceLinkedToExperiment :one
SELECT EXISTS (
    SELECT 1 FROM device_experiments
    WHERE device_id = $1 AND experiment_id = $2
)
`

type IsDeviceLinkedToExperimentParams struct {
	DeviceID     uuid.UUID `json:"device_id"`
	ExperimentID uuid.UUID `json:"experiment_id"`
}

func (q *Queries) IsDeviceLinkedToExperiment(ctx context.Context, db DBTX, arg IsDeviceLinkedToExperimentParams) (bool, error) {
	row := db.QueryRow(ctx, isDeviceLinkedToExperiment, arg.DeviceID, arg.ExperimentID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listMaintenancesByDevice = `-- name: ListMaintenancesByDevice :many
SELECT id, device_id, status, start_at, end_at
FROM maintenances
WHERE device_id = $1
ORDER BY start_at NULLS FIRST, id
`

func (q *Queries) ListMaintenancesByDevice(ctx context.Context, db DBTX, deviceID uuid.UUID) ([]Maintenance, error) {
	rows, err := db.Query(ctx, listMaintenancesByDevice, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Maintenance
	for rows.Next() {
		var i Maintenance
		if err := rows.Scan(
			&i.ID,
			&i.DeviceID,
			&i.Status,
			&i.StartAt,
			&i.EndAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
