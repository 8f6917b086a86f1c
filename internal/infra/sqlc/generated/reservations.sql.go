// Statements from queries/reservations.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    id, user_id, lab_id, experiment_id, device_id, date, start_time, end_time,
    purpose, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
`

type CreateReservationParams struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	LabID        uuid.UUID          `json:"lab_id"`
	ExperimentID uuid.UUID          `json:"experiment_id"`
	DeviceID     uuid.UUID          `json:"device_id"`
	Date         pgtype.Date        `json:"date"`
	StartTime    pgtype.Time        `json:"start_time"`
	EndTime      pgtype.Time        `json:"end_time"`
	Purpose      string             `json:"purpose"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.LabID,
		arg.ExperimentID,
		arg.DeviceID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.Purpose,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT id, user_id, lab_id, experiment_id, device_id, date, start_time, end_time,
       purpose, status, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationForUpdate, id)
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.LabID,
		&i.ExperimentID,
		&i.DeviceID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.Purpose,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationViewByID = `-- name: GetReservationViewByID :one
SELECT r.id, r.user_id, u.name AS user_name, u.role AS user_role,
       r.lab_id, l.name AS lab_name,
       r.experiment_id, e.name AS experiment_name,
       r.device_id, d.name AS device_name,
       r.date, r.start_time, r.end_time, r.purpose, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN users u ON u.id = r.user_id
JOIN laboratories l ON l.id = r.lab_id
JOIN experiments e ON e.id = r.experiment_id
JOIN devices d ON d.id = r.device_id
WHERE r.id = $1
`

type GetReservationViewByIDRow struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	UserName       string             `json:"user_name"`
	UserRole       string             `json:"user_role"`
	LabID          uuid.UUID          `json:"lab_id"`
	LabName        string             `json:"lab_name"`
	ExperimentID   uuid.UUID          `json:"experiment_id"`
	ExperimentName string             `json:"experiment_name"`
	DeviceID       uuid.UUID          `json:"device_id"`
	DeviceName     string             `json:"device_name"`
	Date           pgtype.Date        `json:"date"`
	StartTime      pgtype.Time        `json:"start_time"`
	EndTime        pgtype.Time        `json:"end_time"`
	Purpose        string             `json:"purpose"`
	Status         string             `json:"status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) GetReservationViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetReservationViewByIDRow, error) {
	row := db.QueryRow(ctx, getReservationViewByID, id)
	var i GetReservationViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.UserName,
		&i.UserRole,
		&i.LabID,
		&i.LabName,
		&i.ExperimentID,
		&i.ExperimentName,
		&i.DeviceID,
		&i.DeviceName,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.Purpose,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listAdmittedBookingsByDevice = `-- name: ListAdmittedBookingsByDevice :many
SELECT r.id, r.start_time, r.end_time, r.date, u.role AS holder_role
FROM reservations r
JOIN users u ON u.id = r.user_id
WHERE r.device_id = $1
  AND r.date = $2
  AND r.status = 'admitted'
  AND r.id <> $3
ORDER BY r.start_time
`

type ListAdmittedBookingsByDeviceParams struct {
	DeviceID  uuid.UUID   `json:"device_id"`
	Date      pgtype.Date `json:"date"`
	ExcludeID uuid.UUID   `json:"exclude_id"`
}

type ListAdmittedBookingsByDeviceRow struct {
	ID         uuid.UUID   `json:"id"`
	StartTime  pgtype.Time `json:"start_time"`
	EndTime    pgtype.Time `json:"end_time"`
	Date       pgtype.Date `json:"date"`
	HolderRole string      `json:"holder_role"`
}

func (q *Queries) ListAdmittedBookingsByDevice(ctx context.Context, db DBTX, arg ListAdmittedBookingsByDeviceParams) ([]ListAdmittedBookingsByDeviceRow, error) {
	rows, err := db.Query(ctx, listAdmittedBookingsByDevice, arg.DeviceID, arg.Date, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAdmittedBookingsByDeviceRow
	for rows.Next() {
		var i ListAdmittedBookingsByDeviceRow
		if err := rows.Scan(
			&i.ID,
			&i.StartTime,
			&i.EndTime,
			&i.Date,
			&i.HolderRole,
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

const listAdmittedBookingsByLaboratory = `-- name: ListAdmittedBookingsByLaboratory :many
SELECT r.id, r.start_time, r.end_time, r.date, u.role AS holder_role
FROM reservations r
JOIN users u ON u.id = r.user_id
WHERE r.lab_id = $1
  AND r.date = $2
  AND r.status = 'admitted'
  AND r.id <> $3
ORDER BY r.start_time
`

type ListAdmittedBookingsByLaboratoryParams struct {
	LabID     uuid.UUID   `json:"lab_id"`
	Date      pgtype.Date `json:"date"`
	ExcludeID uuid.UUID   `json:"exclude_id"`
}

type ListAdmittedBookingsByLaboratoryRow struct {
	ID         uuid.UUID   `json:"id"`
	StartTime  pgtype.Time `json:"start_time"`
	EndTime    pgtype.Time `json:"end_time"`
	Date       pgtype.Date `json:"date"`
	HolderRole string      `json:"holder_role"`
}

func (q *Queries) ListAdmittedBookingsByLaboratory(ctx context.Context, db DBTX, arg ListAdmittedBookingsByLaboratoryParams) ([]ListAdmittedBookingsByLaboratoryRow, error) {
	rows, err := db.Query(ctx, listAdmittedBookingsByLaboratory, arg.LabID, arg.Date, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAdmittedBookingsByLaboratoryRow
	for rows.Next() {
		var i ListAdmittedBookingsByLaboratoryRow
		if err := rows.Scan(
			&i.ID,
			&i.StartTime,
			&i.EndTime,
			&i.Date,
			&i.HolderRole,
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

const listReservationViewsByLaboratoryAndDate = `-- name: ListReservationViewsByLaboratoryAndDate :many
SELECT r.id, r.user_id, u.name AS user_name, u.role AS user_role,
       r.lab_id, l.name AS lab_name,
       r.experiment_id, e.name AS experiment_name,
       r.device_id, d.name AS device_name,
       r.date, r.start_time, r.end_time, r.purpose, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN users u ON u.id = r.user_id
JOIN laboratories l ON l.id = r.lab_id
JOIN experiments e ON e.id = r.experiment_id
JOIN devices d ON d.id = r.device_id
WHERE r.lab_id = $1 AND r.date = $2
ORDER BY r.start_time, r.created_at
`

type ListReservationViewsByLaboratoryAndDateParams struct {
	LabID uuid.UUID   `json:"lab_id"`
	Date  pgtype.Date `json:"date"`
}

type ListReservationViewsByLaboratoryAndDateRow struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	UserName       string             `json:"user_name"`
	UserRole       string             `json:"user_role"`
	LabID          uuid.UUID          `json:"lab_id"`
	LabName        string             `json:"lab_name"`
	ExperimentID   uuid.UUID          `json:"experiment_id"`
	ExperimentName string             `json:"experiment_name"`
	DeviceID       uuid.UUID          `json:"device_id"`
	DeviceName     string             `json:"device_name"`
	Date           pgtype.Date        `json:"date"`
	StartTime      pgtype.Time        `json:"start_time"`
	EndTime        pgtype.Time        `json:"end_time"`
	Purpose        string             `json:"purpose"`
	Status         string             `json:"status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) ListReservationViewsByLaboratoryAndDate(ctx context.Context, db DBTX, arg ListReservationViewsByLaboratoryAndDateParams) ([]ListReservationViewsByLaboratoryAndDateRow, error) {
	rows, err := db.Query(ctx, listReservationViewsByLaboratoryAndDate, arg.LabID, arg.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservationViewsByLaboratoryAndDateRow
	for rows.Next() {
		var i ListReservationViewsByLaboratoryAndDateRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.UserName,
			&i.UserRole,
			&i.LabID,
			&i.LabName,
			&i.ExperimentID,
			&i.ExperimentName,
			&i.DeviceID,
			&i.DeviceName,
			&i.Date,
			&i.StartTime,
			&i.EndTime,
			&i.Purpose,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET lab_id = $2,
    experiment_id = $3,
    device_id = $4,
    date = $5,
    start_time = $6,
    end_time = $7,
    purpose = $8,
    status = $9,
    updated_at = $10
WHERE id = $1
`

type UpdateReservationParams struct {
	ID           uuid.UUID          `json:"id"`
	LabID        uuid.UUID          `json:"lab_id"`
	ExperimentID uuid.UUID          `json:"experiment_id"`
	DeviceID     uuid.UUID          `json:"device_id"`
	Date         pgtype.Date        `json:"date"`
	StartTime    pgtype.Time        `json:"start_time"`
	EndTime      pgtype.Time        `json:"end_time"`
	Purpose      string             `json:"purpose"`
	Status       string             `json:"status"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.LabID,
		arg.ExperimentID,
		arg.DeviceID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.Purpose,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
