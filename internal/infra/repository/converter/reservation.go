package converter

import (
	"lab-reservation/internal/domain/reservation"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	slot := res.Slot()
	return sqlc.CreateReservationParams{
		ID:           res.ID(),
		UserID:       res.UserID(),
		LabID:        res.LabID(),
		ExperimentID: res.ExperimentID(),
		DeviceID:     res.DeviceID(),
		Date:         pgconv.DateToPgtype(slot.Date()),
		StartTime:    pgconv.MinutesToPgtypeTime(slot.Start().Minutes()),
		EndTime:      pgconv.MinutesToPgtypeTime(slot.End().Minutes()),
		Purpose:      res.Purpose(),
		Status:       res.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := res.Slot()
	return sqlc.UpdateReservationParams{
		ID:           res.ID(),
		LabID:        res.LabID(),
		ExperimentID: res.ExperimentID(),
		DeviceID:     res.DeviceID(),
		Date:         pgconv.DateToPgtype(slot.Date()),
		StartTime:    pgconv.MinutesToPgtypeTime(slot.Start().Minutes()),
		EndTime:      pgconv.MinutesToPgtypeTime(slot.End().Minutes()),
		Purpose:      res.Purpose(),
		Status:       res.Status().String(),
		UpdatedAt:    pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	slot, err := SlotFromPgtype(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(row.ID, reservation.Details{
		UserID:       row.UserID,
		LabID:        row.LabID,
		ExperimentID: row.ExperimentID,
		DeviceID:     row.DeviceID,
		Slot:         slot,
		Purpose:      row.Purpose,
	}, status, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func SlotFromPgtype(date pgtype.Date, start, end pgtype.Time) (reservation.TimeSlot, error) {
	d, err := pgconv.DateFromPgtype(date)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	s, err := pgconv.MinutesFromPgtypeTime(start)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	e, err := pgconv.MinutesFromPgtypeTime(end)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(d, reservation.TimeOfDay(s), reservation.TimeOfDay(e))
}
