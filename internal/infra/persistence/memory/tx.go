package memory

import (
	"context"
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/usage"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx works on a private copy of the store state.
type memTx struct {
	state state
}

func (t *memTx) Reads() shared.CommandReads                 { return t }
func (t *memTx) Reservations() shared.ReservationRepository { return t }
func (t *memTx) Ledger() shared.LedgerRepository            { return t }

// Locks is a no-op: Within already serializes writers.
func (t *memTx) Locks() shared.SlotLocker { return noopLocker{} }

type noopLocker struct{}

func (noopLocker) Lock(context.Context, ...shared.SlotKey) error { return nil }

func (t *memTx) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r, ok := t.state.users[id]
	if !ok {
		return nil, infra.NotFound("user")
	}
	return toUser(r)
}

func (t *memTx) LaboratoryByID(_ context.Context, id uuid.UUID) (*lab.Laboratory, error) {
	r, ok := t.state.laboratories[id]
	if !ok {
		return nil, infra.NotFound("laboratory")
	}
	return toLaboratory(r)
}

func (t *memTx) ExperimentByID(_ context.Context, id uuid.UUID) (*lab.Experiment, error) {
	r, ok := t.state.experiments[id]
	if !ok {
		return nil, infra.NotFound("experiment")
	}
	return toExperiment(r)
}

func (t *memTx) DeviceByID(_ context.Context, id uuid.UUID) (*device.Device, error) {
	r, ok := t.state.devices[id]
	if !ok {
		return nil, infra.NotFound("device")
	}
	return toDevice(r)
}

func (t *memTx) IsDeviceLinked(_ context.Context, deviceID, experimentID uuid.UUID) (bool, error) {
	_, ok := t.state.links[DeviceLink{DeviceID: deviceID, ExperimentID: experimentID}]
	return ok, nil
}

func (t *memTx) MaintenancesByDevice(_ context.Context, deviceID uuid.UUID) ([]*device.Maintenance, error) {
	var out []*device.Maintenance
	for _, r := range t.state.maintenances {
		if r.DeviceID != deviceID {
			continue
		}
		m, err := toMaintenance(r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (t *memTx) LaboratoryBookings(_ context.Context, labID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error) {
	return bookings(&t.state, date, exclude, func(r ReservationRecord) bool { return r.LabID == labID })
}

func (t *memTx) DeviceBookings(_ context.Context, deviceID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error) {
	return bookings(&t.state, date, exclude, func(r ReservationRecord) bool { return r.DeviceID == deviceID })
}

func bookings(st *state, date time.Time, exclude uuid.UUID, match func(ReservationRecord) bool) ([]reservation.Booking, error) {
	day := reservation.FormatDate(date)
	var out []reservation.Booking
	for _, r := range st.reservations {
		if r.ID == exclude || r.Date != day || r.Status != reservation.StatusAdmitted.String() || !match(r) {
			continue
		}
		slot, err := recordSlot(r)
		if err != nil {
			return nil, err
		}
		holder, ok := st.users[r.UserID]
		if !ok {
			return nil, infra.WrapRepoErr("resolve booking holder", nil)
		}
		role, err := user.NewRole(holder.Role)
		if err != nil {
			return nil, infra.WrapRepoErr("decode user role", err)
		}
		out = append(out, reservation.Booking{ReservationID: r.ID, Slot: slot, HolderRole: role})
	}
	return out, nil
}

func (t *memTx) ReservationForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, ok := t.state.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation")
	}
	return toReservation(r)
}

func (t *memTx) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := t.state.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("create reservation", nil, infra.KindDuplicateKey)
	}
	if err := t.checkReferences(res); err != nil {
		return err
	}
	t.state.reservations[res.ID()] = fromReservation(res)
	return nil
}

func (t *memTx) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := t.state.reservations[res.ID()]; !ok {
		return infra.NotFound("reservation")
	}
	if err := t.checkReferences(res); err != nil {
		return err
	}
	t.state.reservations[res.ID()] = fromReservation(res)
	return nil
}

func (t *memTx) checkReferences(res *reservation.Reservation) error {
	_, u := t.state.users[res.UserID()]
	_, l := t.state.laboratories[res.LabID()]
	_, e := t.state.experiments[res.ExperimentID()]
	_, d := t.state.devices[res.DeviceID()]
	if !u || !l || !e || !d {
		return infra.WrapRepoErr("reservation references a missing row", nil, infra.KindForeignKeyViolated)
	}
	return nil
}

// Post applies every counter of the posting or none of them.
func (t *memTx) Post(_ context.Context, p usage.Posting) error {
	lr, ok := t.state.laboratories[p.LabID]
	if !ok {
		return infra.NotFound("laboratory")
	}
	er, ok := t.state.experiments[p.ExperimentID]
	if !ok {
		return infra.NotFound("experiment")
	}
	l, err := toLaboratory(lr)
	if err != nil {
		return err
	}
	e, err := toExperiment(er)
	if err != nil {
		return err
	}

	records := make([]DeviceRecord, 0, len(p.DeviceIDs))
	devices := make([]*device.Device, 0, len(p.DeviceIDs))
	for _, id := range p.DeviceIDs {
		dr, ok := t.state.devices[id]
		if !ok {
			return infra.NotFound("device")
		}
		d, err := toDevice(dr)
		if err != nil {
			return err
		}
		records = append(records, dr)
		devices = append(devices, d)
	}

	if err := p.ApplyTo(l, devices, e); err != nil {
		return infra.WrapRepoErr("apply usage posting", err)
	}

	lr.UsageMinutes, lr.OperatingMinutes = l.UsageMinutes(), l.OperatingMinutes()
	t.state.laboratories[lr.ID] = lr
	for i, dr := range records {
		dr.CurrentMinutes, dr.TotalMinutes = devices[i].CurrentMinutes(), devices[i].TotalMinutes()
		t.state.devices[dr.ID] = dr
	}
	er.CompletedCount = e.CompletedCount()
	t.state.experiments[er.ID] = er
	return nil
}
