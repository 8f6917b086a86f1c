package commands

import (
	"context"
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// DeviceArbitration selects how device level overlaps are qualified.
type DeviceArbitration string

const (
	// DeviceRolePriority reports device conflicts with the same role table as laboratories.
	DeviceRolePriority DeviceArbitration = "role_priority"
	// DeviceStrict reports every device conflict as a plain double booking.
	DeviceStrict DeviceArbitration = "strict"
)

type admissionRequest struct {
	requester    *user.User
	labID        uuid.UUID
	experimentID uuid.UUID
	deviceIDs    []uuid.UUID
	slot         reservation.TimeSlot
	exclude      uuid.UUID
}

type admissionTargets struct {
	laboratory *lab.Laboratory
	experiment *lab.Experiment
	devices    []*device.Device
}

// validator runs the admission checks against reads from the current transaction.
type validator struct {
	reads       shared.CommandReads
	arbitration DeviceArbitration
	location    *time.Location
}

func newValidator(reads shared.CommandReads, settings AdmissionSettings) *validator {
	return &validator{reads: reads, arbitration: settings.DeviceArbitration, location: settings.Location}
}

func (v *validator) requester(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := v.reads.UserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound)
	}
	if !u.CanReserve() {
		return nil, errs.Wrapf(ErrRoleNotPermitted, "role %q", u.Role())
	}
	return u, nil
}

// validate short-circuits on the first failure: laboratory, experiment, then each device.
func (v *validator) validate(ctx context.Context, req admissionRequest) (*admissionTargets, error) {
	role := req.requester.Role()

	l, err := v.laboratory(ctx, req.labID, role, req.slot, req.exclude)
	if err != nil {
		return nil, err
	}

	e, err := v.experiment(ctx, req.experimentID, l.ID(), role)
	if err != nil {
		return nil, err
	}

	devices := make([]*device.Device, 0, len(req.deviceIDs))
	for _, id := range req.deviceIDs {
		d, err := v.device(ctx, id, e.ID(), role, req.slot, req.exclude)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return &admissionTargets{laboratory: l, experiment: e, devices: devices}, nil
}

func (v *validator) laboratory(
	ctx context.Context,
	labID uuid.UUID,
	role user.Role,
	slot reservation.TimeSlot,
	exclude uuid.UUID,
) (*lab.Laboratory, error) {
	l, err := v.reads.LaboratoryByID(ctx, labID)
	if err != nil {
		return nil, lookupErr(err, ErrLaboratoryNotFound)
	}
	if !l.IsAvailable() {
		return nil, errs.Wrapf(ErrLaboratoryUnavailable, "laboratory %q", l.Name())
	}
	if !lab.Permits(l.Category(), role) {
		return nil, errs.Wrapf(ErrLaboratoryRoleMismatch, "laboratory %q is dedicated to %s use", l.Name(), l.Category())
	}

	bookings, err := v.reads.LaboratoryBookings(ctx, l.ID(), slot.Date(), exclude)
	if err != nil {
		return nil, storeErr(err)
	}
	if held, ok := reservation.FindOverlap(slot, bookings); ok {
		reason := reservation.Arbitrate(held.HolderRole, role)
		return nil, conflict(reservation.ResourceLaboratory, l.Name(), reason, held.ReservationID)
	}
	return l, nil
}

func (v *validator) experiment(ctx context.Context, experimentID, labID uuid.UUID, role user.Role) (*lab.Experiment, error) {
	e, err := v.reads.ExperimentByID(ctx, experimentID)
	if err != nil {
		return nil, lookupErr(err, ErrExperimentNotFound)
	}
	if !e.BelongsTo(labID) {
		return nil, errs.Wrapf(ErrExperimentNotInLab, "experiment %q", e.Name())
	}
	if !lab.Permits(e.Category(), role) {
		return nil, errs.Wrapf(ErrExperimentRoleMismatch, "experiment %q is restricted to %s use", e.Name(), e.Category())
	}
	return e, nil
}

func (v *validator) device(
	ctx context.Context,
	deviceID, experimentID uuid.UUID,
	role user.Role,
	slot reservation.TimeSlot,
	exclude uuid.UUID,
) (*device.Device, error) {
	d, err := v.reads.DeviceByID(ctx, deviceID)
	if err != nil {
		return nil, lookupErr(err, ErrDeviceNotFound)
	}

	linked, err := v.reads.IsDeviceLinked(ctx, d.ID(), experimentID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !linked {
		return nil, errs.Wrapf(ErrDeviceNotLinked, "device %q", d.Name())
	}
	if !d.IsAvailable() {
		return nil, errs.Wrapf(ErrDeviceUnavailable, "device %q is %s", d.Name(), d.Status())
	}

	bookings, err := v.reads.DeviceBookings(ctx, d.ID(), slot.Date(), exclude)
	if err != nil {
		return nil, storeErr(err)
	}
	if held, ok := reservation.FindOverlap(slot, bookings); ok {
		reason := reservation.ReasonAlreadyReserved
		if v.arbitration != DeviceStrict {
			reason = reservation.Arbitrate(held.HolderRole, role)
		}
		return nil, conflict(reservation.ResourceDevice, d.Name(), reason, held.ReservationID)
	}

	maintenances, err := v.reads.MaintenancesByDevice(ctx, d.ID())
	if err != nil {
		return nil, storeErr(err)
	}
	for _, m := range maintenances {
		if m.Blocks(slot.Date(), v.location) {
			return nil, errs.Wrapf(ErrDeviceUnderMaintenance, "device %q on %s", d.Name(), slot.DateString())
		}
	}
	return d, nil
}

// references resolves the experiment and devices of a request that stopped at a conflict
// before their own checks ran, so a rejected record only points at existing rows.
func (v *validator) references(ctx context.Context, experimentID uuid.UUID, deviceIDs []uuid.UUID) error {
	if _, err := v.reads.ExperimentByID(ctx, experimentID); err != nil {
		return lookupErr(err, ErrExperimentNotFound)
	}
	for _, id := range deviceIDs {
		if _, err := v.reads.DeviceByID(ctx, id); err != nil {
			return lookupErr(err, ErrDeviceNotFound)
		}
	}
	return nil
}

func conflict(resource reservation.Resource, name string, reason reservation.ConflictReason, holding uuid.UUID) error {
	return errs.Mark(reservation.NewConflictError(resource, name, reason, holding), errs.ErrSchedulingConflict)
}
