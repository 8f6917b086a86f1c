package repository

import (
	"context"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository/converter"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/mock_reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return classifyWriteErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return classifyWriteErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}
