package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/pkg/metrics"
	"lab-reservation/internal/pkg/patch"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=commandsmock

type CreateReservationCommand struct {
	UserID       uuid.UUID
	LabID        uuid.UUID
	ExperimentID uuid.UUID
	DeviceIDs    []uuid.UUID
	Date         string
	StartTime    string
	EndTime      string
	Purpose      string
}

// UpdateReservationCommand carries a partial update; nil or empty fields keep their current value.
type UpdateReservationCommand struct {
	ReservationID uuid.UUID
	LabID         *uuid.UUID
	ExperimentID  *uuid.UUID
	DeviceIDs     []uuid.UUID
	Date          *string
	StartTime     *string
	EndTime       *string
	Purpose       *string
}

func (c UpdateReservationCommand) IsEmpty() bool {
	return !patch.AnySet(
		c.LabID != nil,
		c.ExperimentID != nil,
		len(c.DeviceIDs) > 0,
		c.Date != nil,
		c.StartTime != nil,
		c.EndTime != nil,
		c.Purpose != nil,
	)
}

// AdmissionResult is returned for admitted requests and for recorded rejections.
// Conflict is set only when Admitted is false.
type AdmissionResult struct {
	ReservationID  uuid.UUID
	ReservationIDs []uuid.UUID
	Admitted       bool
	Conflict       error
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*AdmissionResult, error)
	UpdateReservation(ctx context.Context, cmd UpdateReservationCommand) (*AdmissionResult, error)
}

type AdmissionSettings struct {
	DeviceArbitration DeviceArbitration
	Location          *time.Location
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings AdmissionSettings
	recorder metrics.AdmissionRecorder
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	settings AdmissionSettings,
	recorder metrics.AdmissionRecorder,
	logger *slog.Logger,
) ReservationCommands {
	if settings.DeviceArbitration == "" {
		settings.DeviceArbitration = DeviceRolePriority
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationCommandsImpl{
		uow:      uow,
		clock:    clk,
		settings: settings,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *reservationCommandsImpl) CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*AdmissionResult, error) {
	started := uc.clock.Now()
	result, err := uc.createReservation(ctx, cmd)
	err = classify(err)
	uc.observe(ctx, metrics.OperationCreate, result, err, started, slog.String("lab_id", cmd.LabID.String()))
	return result, err
}

func (uc *reservationCommandsImpl) createReservation(ctx context.Context, cmd CreateReservationCommand) (*AdmissionResult, error) {
	deviceIDs := dedupe(cmd.DeviceIDs)
	if len(deviceIDs) == 0 {
		return nil, ErrNoDevices
	}
	slot, err := uc.parseSlot(cmd.Date, cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, err
	}

	var result *AdmissionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if err := tx.Locks().Lock(ctx, slotKeys(cmd.LabID, deviceIDs, slot)...); err != nil {
			return storeErr(err)
		}

		v := newValidator(tx.Reads(), uc.settings)
		requester, err := v.requester(ctx, cmd.UserID)
		if err != nil {
			return err
		}

		details := reservation.Details{
			UserID:       requester.ID(),
			LabID:        cmd.LabID,
			ExperimentID: cmd.ExperimentID,
			DeviceID:     deviceIDs[0],
			Slot:         slot,
			Purpose:      cmd.Purpose,
		}

		_, err = v.validate(ctx, admissionRequest{
			requester:    requester,
			labID:        cmd.LabID,
			experimentID: cmd.ExperimentID,
			deviceIDs:    deviceIDs,
			slot:         slot,
		})
		if err != nil {
			if !errs.Is(err, errs.ErrSchedulingConflict) {
				return err
			}
			if rerr := v.references(ctx, cmd.ExperimentID, deviceIDs); rerr != nil {
				return rerr
			}
			rejected, rerr := uc.recordRejection(ctx, tx, details)
			if rerr != nil {
				return rerr
			}
			result = &AdmissionResult{ReservationID: rejected.ID(), Admitted: false, Conflict: err}
			return nil
		}

		now := uc.clock.Now()
		rows := make([]*reservation.Reservation, 0, len(deviceIDs))
		for _, id := range deviceIDs {
			d := details
			d.DeviceID = id
			r, err := reservation.NewAdmitted(d, now)
			if err != nil {
				return invalidInput(err)
			}
			if err := tx.Reservations().Create(ctx, r); err != nil {
				return storeErr(err)
			}
			rows = append(rows, r)
		}

		if err := applyLedger(ctx, tx, rows[0], deviceIDs); err != nil {
			return err
		}

		result = &AdmissionResult{ReservationID: rows[0].ID(), ReservationIDs: ids(rows), Admitted: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *reservationCommandsImpl) recordRejection(ctx context.Context, tx shared.Tx, d reservation.Details) (*reservation.Reservation, error) {
	rejected, err := reservation.NewRejected(d, uc.clock.Now())
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := tx.Reservations().Create(ctx, rejected); err != nil {
		return nil, storeErr(err)
	}
	return rejected, nil
}

func (uc *reservationCommandsImpl) UpdateReservation(ctx context.Context, cmd UpdateReservationCommand) (*AdmissionResult, error) {
	started := uc.clock.Now()
	result, err := uc.updateReservation(ctx, cmd)
	err = classify(err)
	uc.observe(ctx, metrics.OperationUpdate, result, err, started, slog.String("target_reservation_id", cmd.ReservationID.String()))
	return result, err
}

// updateReservation reverses, revalidates and reapplies inside one transaction,
// so a failed revalidation also rolls back the reversal.
func (uc *reservationCommandsImpl) updateReservation(ctx context.Context, cmd UpdateReservationCommand) (*AdmissionResult, error) {
	if cmd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	var result *AdmissionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		existing, err := tx.Reads().ReservationForUpdate(ctx, cmd.ReservationID)
		if err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}

		v := newValidator(tx.Reads(), uc.settings)
		requester, err := v.requester(ctx, existing.UserID())
		if err != nil {
			return err
		}

		merged, deviceIDs, err := uc.merge(existing, cmd)
		if err != nil {
			return err
		}

		if err := tx.Locks().Lock(ctx, slotKeys(merged.LabID, deviceIDs, merged.Slot)...); err != nil {
			return storeErr(err)
		}

		if err := reverseLedger(ctx, tx, existing); err != nil {
			return err
		}

		_, err = v.validate(ctx, admissionRequest{
			requester:    requester,
			labID:        merged.LabID,
			experimentID: merged.ExperimentID,
			deviceIDs:    deviceIDs,
			slot:         merged.Slot,
			exclude:      existing.ID(),
		})
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := existing.Reschedule(merged, now); err != nil {
			return invalidInput(err)
		}
		if err := tx.Reservations().Update(ctx, existing); err != nil {
			return storeErr(err)
		}

		rows := []*reservation.Reservation{existing}
		for _, id := range deviceIDs[1:] {
			d := merged
			d.DeviceID = id
			sibling, err := reservation.NewAdmitted(d, now)
			if err != nil {
				return invalidInput(err)
			}
			if err := tx.Reservations().Create(ctx, sibling); err != nil {
				return storeErr(err)
			}
			rows = append(rows, sibling)
		}

		if err := applyLedger(ctx, tx, existing, deviceIDs); err != nil {
			return err
		}

		result = &AdmissionResult{ReservationID: existing.ID(), ReservationIDs: ids(rows), Admitted: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// merge overlays the supplied fields on the stored reservation.
func (uc *reservationCommandsImpl) merge(existing *reservation.Reservation, cmd UpdateReservationCommand) (reservation.Details, []uuid.UUID, error) {
	current := existing.Details()
	slot := current.Slot

	deviceIDs := dedupe(patch.CoalesceSlice(cmd.DeviceIDs, []uuid.UUID{current.DeviceID}))

	merged, err := uc.parseSlot(
		patch.Coalesce(cmd.Date, slot.DateString()),
		patch.Coalesce(cmd.StartTime, slot.Start().String()),
		patch.Coalesce(cmd.EndTime, slot.End().String()),
	)
	if err != nil {
		return reservation.Details{}, nil, err
	}

	return reservation.Details{
		UserID:       current.UserID,
		LabID:        patch.Coalesce(cmd.LabID, current.LabID),
		ExperimentID: patch.Coalesce(cmd.ExperimentID, current.ExperimentID),
		DeviceID:     deviceIDs[0],
		Slot:         merged,
		Purpose:      patch.Coalesce(cmd.Purpose, current.Purpose),
	}, deviceIDs, nil
}

func (uc *reservationCommandsImpl) parseSlot(date, start, end string) (reservation.TimeSlot, error) {
	slot, err := reservation.ParseTimeSlot(date, start, end)
	if err != nil {
		return reservation.TimeSlot{}, invalidInput(err)
	}
	if err := slot.ValidateNotPast(clock.Today(uc.clock, uc.settings.Location)); err != nil {
		return reservation.TimeSlot{}, invalidInput(err)
	}
	return slot, nil
}

func (uc *reservationCommandsImpl) observe(ctx context.Context, operation string, result *AdmissionResult, err error, started time.Time, attrs ...any) {
	elapsed := uc.clock.Now().Sub(started)

	switch {
	case err != nil:
		uc.recorder.ObserveAdmission(operation, metrics.OutcomeFailed, elapsed)
		level := slog.LevelError
		if isValidationFailure(err) {
			level = slog.LevelInfo
		}
		uc.logger.Log(ctx, level, "reservation "+operation+" failed", append(attrs, slog.String("error", err.Error()))...)
	case result.Admitted:
		uc.recorder.ObserveAdmission(operation, metrics.OutcomeAdmitted, elapsed)
		uc.logger.InfoContext(ctx, "reservation admitted", append(attrs,
			slog.String("operation", operation),
			slog.String("reservation_id", result.ReservationID.String()),
			slog.Int("rows", len(result.ReservationIDs)),
		)...)
	default:
		uc.recorder.ObserveAdmission(operation, metrics.OutcomeRejected, elapsed)
		uc.logger.WarnContext(ctx, "reservation rejected", append(attrs,
			slog.String("operation", operation),
			slog.String("reservation_id", result.ReservationID.String()),
			slog.String("reason", result.Conflict.Error()),
		)...)
	}
}

func isValidationFailure(err error) bool {
	return errs.IsAny(err,
		errs.ErrNotFound,
		errs.ErrRoleMismatch,
		errs.ErrUnavailable,
		errs.ErrSchedulingConflict,
		errs.ErrUnderMaintenance,
		errs.ErrInvalidInput,
		errs.ErrExperimentNotInLab,
		errs.ErrNotLinked,
	)
}

func dedupe(in []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]uuid.UUID, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func ids(rows []*reservation.Reservation) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID())
	}
	return out
}
