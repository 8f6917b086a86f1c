package readstore

import (
	"context"
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository/converter"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/mock_booking.go -package=readstoremock

type BookingReadQueries interface {
	ListAdmittedBookingsByLaboratory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAdmittedBookingsByLaboratoryParams) ([]sqlc.ListAdmittedBookingsByLaboratoryRow, error)
	ListAdmittedBookingsByDevice(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAdmittedBookingsByDeviceParams) ([]sqlc.ListAdmittedBookingsByDeviceRow, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
}

// BookingReadStore reads the admitted slots that compete with a new request.
type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{queries: queries, db: db}
}

func (r *BookingReadStore) LaboratoryBookings(ctx context.Context, labID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error) {
	rows, err := r.queries.ListAdmittedBookingsByLaboratory(ctx, r.db, sqlc.ListAdmittedBookingsByLaboratoryParams{
		LabID:     labID,
		Date:      pgconv.DateToPgtype(date),
		ExcludeID: exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list laboratory bookings", err)
	}
	out := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row.ID, row.Date, row.StartTime, row.EndTime, row.HolderRole)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BookingReadStore) DeviceBookings(ctx context.Context, deviceID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error) {
	rows, err := r.queries.ListAdmittedBookingsByDevice(ctx, r.db, sqlc.ListAdmittedBookingsByDeviceParams{
		DeviceID:  deviceID,
		Date:      pgconv.DateToPgtype(date),
		ExcludeID: exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list device bookings", err)
	}
	out := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row.ID, row.Date, row.StartTime, row.EndTime, row.HolderRole)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BookingReadStore) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return res, nil
}

func toBooking(id uuid.UUID, date pgtype.Date, start, end pgtype.Time, holderRole string) (reservation.Booking, error) {
	slot, err := converter.SlotFromPgtype(date, start, end)
	if err != nil {
		return reservation.Booking{}, infra.WrapRepoErr("failed to decode booking slot", err)
	}
	role, err := user.NewRole(holderRole)
	if err != nil {
		return reservation.Booking{}, infra.WrapRepoErr("failed to decode booking holder role", err)
	}
	return reservation.Booking{ReservationID: id, Slot: slot, HolderRole: role}, nil
}
