package queries

import (
	"context"
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=queriesmock

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrLaboratoryNotFound  = errs.New("laboratory not found")
	ErrDeviceNotFound      = errs.New("device not found")
	ErrInvalidDate         = errs.New("date must be formatted as YYYY-MM-DD")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByLaboratory(ctx context.Context, labID uuid.UUID, date string) ([]*ReservationView, error)
	LaboratoryUsage(ctx context.Context, labID uuid.UUID) (*LaboratoryUsageView, error)
	DeviceUsage(ctx context.Context, deviceID uuid.UUID) (*DeviceUsageView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByLaboratoryAndDate(ctx context.Context, labID uuid.UUID, date time.Time) ([]*ReservationView, error)
}

type UsageReadStore interface {
	LaboratoryUsage(ctx context.Context, labID uuid.UUID) (*LaboratoryUsageView, error)
	DeviceUsage(ctx context.Context, deviceID uuid.UUID) (*DeviceUsageView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	usage        UsageReadStore
}

func NewReservationQueries(reservations ReservationReadStore, usage UsageReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, usage: usage}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrReservationNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListByLaboratory(ctx context.Context, labID uuid.UUID, date string) ([]*ReservationView, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(ErrInvalidDate, errs.ErrInvalidInput)
	}
	// Surface an unknown laboratory as not found rather than an empty list.
	if _, err := q.LaboratoryUsage(ctx, labID); err != nil {
		return nil, err
	}
	return q.reservations.FindByLaboratoryAndDate(ctx, labID, d)
}

func (q *reservationQueriesImpl) LaboratoryUsage(ctx context.Context, labID uuid.UUID) (*LaboratoryUsageView, error) {
	v, err := q.usage.LaboratoryUsage(ctx, labID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrLaboratoryNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) DeviceUsage(ctx context.Context, deviceID uuid.UUID) (*DeviceUsageView, error) {
	v, err := q.usage.DeviceUsage(ctx, deviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrDeviceNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}
