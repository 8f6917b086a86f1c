// Package usage holds the accounting effect of admitted reservations on
// laboratory, device and experiment counters.
package usage

import (
	"errors"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrNotAdmitted    = errors.New("only admitted reservations carry a ledger effect")
	ErrNoDevices      = errors.New("posting requires at least one device")
	ErrEntityMismatch = errors.New("posting does not target the given entity")
)

// Posting is one signed ledger movement. Runs is the experiment completed-count delta.
type Posting struct {
	LabID        uuid.UUID
	ExperimentID uuid.UUID
	DeviceIDs    []uuid.UUID
	Minutes      int64
	Runs         int
}

// ForAdmission builds the Apply posting for a request anchored on its first reservation row.
func ForAdmission(anchor *reservation.Reservation, deviceIDs []uuid.UUID) (Posting, error) {
	if !anchor.IsAdmitted() {
		return Posting{}, ErrNotAdmitted
	}
	if len(deviceIDs) == 0 {
		return Posting{}, ErrNoDevices
	}
	ids := make([]uuid.UUID, len(deviceIDs))
	copy(ids, deviceIDs)
	return Posting{
		LabID:        anchor.LabID(),
		ExperimentID: anchor.ExperimentID(),
		DeviceIDs:    ids,
		Minutes:      anchor.Slot().Minutes(),
		Runs:         1,
	}, nil
}

// ForReversal derives the Reverse posting from the reservation's stored slot alone.
func ForReversal(r *reservation.Reservation) (Posting, error) {
	if !r.IsAdmitted() {
		return Posting{}, ErrNotAdmitted
	}
	return Posting{
		LabID:        r.LabID(),
		ExperimentID: r.ExperimentID(),
		DeviceIDs:    []uuid.UUID{r.DeviceID()},
		Minutes:      r.Slot().Minutes(),
		Runs:         1,
	}.Negate(), nil
}

func (p Posting) Negate() Posting {
	ids := make([]uuid.UUID, len(p.DeviceIDs))
	copy(ids, p.DeviceIDs)
	return Posting{
		LabID:        p.LabID,
		ExperimentID: p.ExperimentID,
		DeviceIDs:    ids,
		Minutes:      -p.Minutes,
		Runs:         -p.Runs,
	}
}

func (p Posting) Hours() float64 {
	return lab.MinutesToHours(p.Minutes)
}

// ApplyTo mutates the given entities by the posting. devices must be the posting's devices.
func (p Posting) ApplyTo(l *lab.Laboratory, devices []*device.Device, e *lab.Experiment) error {
	if l.ID() != p.LabID || e.ID() != p.ExperimentID {
		return ErrEntityMismatch
	}
	if len(devices) != len(p.DeviceIDs) {
		return ErrEntityMismatch
	}
	for i, d := range devices {
		if d.ID() != p.DeviceIDs[i] {
			return ErrEntityMismatch
		}
	}

	l.AddUsage(p.Minutes)
	for _, d := range devices {
		d.AddUsage(p.Minutes)
	}
	e.AddCompleted(p.Runs)
	return nil
}
