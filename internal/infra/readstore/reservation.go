package readstore

import (
	"context"
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository/converter"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/mock_reservation.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViewsByLaboratoryAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsByLaboratoryAndDateParams) ([]sqlc.ListReservationViewsByLaboratoryAndDateRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(viewRow(row))
}

func (r *ReservationReadStore) FindByLaboratoryAndDate(ctx context.Context, labID uuid.UUID, date time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByLaboratoryAndDate(ctx, r.db, sqlc.ListReservationViewsByLaboratoryAndDateParams{
		LabID: labID,
		Date:  pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list laboratory reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToReservationView(viewRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// viewRow is the column set shared by both view queries; sqlc emits one row type per query.
type viewRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	UserName       string
	UserRole       string
	LabID          uuid.UUID
	LabName        string
	ExperimentID   uuid.UUID
	ExperimentName string
	DeviceID       uuid.UUID
	DeviceName     string
	Date           pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	Purpose        string
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func rowToReservationView(row viewRow) (*queries.ReservationView, error) {
	slot, err := converter.SlotFromPgtype(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation slot", err)
	}
	return &queries.ReservationView{
		ID:             row.ID,
		UserID:         row.UserID,
		UserName:       row.UserName,
		UserRole:       row.UserRole,
		LabID:          row.LabID,
		LabName:        row.LabName,
		ExperimentID:   row.ExperimentID,
		ExperimentName: row.ExperimentName,
		DeviceID:       row.DeviceID,
		DeviceName:     row.DeviceName,
		Date:           slot.DateString(),
		StartTime:      slot.Start().String(),
		EndTime:        slot.End().String(),
		Hours:          slot.Hours(),
		Purpose:        row.Purpose,
		Status:         row.Status,
		Admitted:       row.Status == reservation.StatusAdmitted.String(),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
