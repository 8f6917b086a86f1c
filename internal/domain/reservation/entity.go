package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrMissingDevice = errors.New("reservation requires a device")
)

// Details are the booking fields shared by every row of one request.
type Details struct {
	UserID       uuid.UUID
	LabID        uuid.UUID
	ExperimentID uuid.UUID
	DeviceID     uuid.UUID
	Slot         TimeSlot
	Purpose      string
}

type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	labID        uuid.UUID
	experimentID uuid.UUID
	deviceID     uuid.UUID
	slot         TimeSlot
	purpose      string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmitted(d Details, now time.Time) (*Reservation, error) {
	return newReservation(d, StatusAdmitted, now)
}

// NewRejected builds the audit row for an attempt that lost a scheduling conflict.
func NewRejected(d Details, now time.Time) (*Reservation, error) {
	return newReservation(d, StatusRejected, now)
}

func newReservation(d Details, status Status, now time.Time) (*Reservation, error) {
	if d.DeviceID == uuid.Nil {
		return nil, ErrMissingDevice
	}
	if d.Slot.IsZero() {
		return nil, ErrInvalidTimeRange
	}
	return &Reservation{
		id:           uuid.New(),
		userID:       d.UserID,
		labID:        d.LabID,
		experimentID: d.ExperimentID,
		deviceID:     d.DeviceID,
		slot:         d.Slot,
		purpose:      d.Purpose,
		status:       status,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	d Details,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       d.UserID,
		labID:        d.LabID,
		experimentID: d.ExperimentID,
		deviceID:     d.DeviceID,
		slot:         d.Slot,
		purpose:      d.Purpose,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Reschedule rewrites the booking in place and admits it. The owner never changes.
func (r *Reservation) Reschedule(d Details, now time.Time) error {
	if d.DeviceID == uuid.Nil {
		return ErrMissingDevice
	}
	if d.Slot.IsZero() {
		return ErrInvalidTimeRange
	}
	r.labID = d.LabID
	r.experimentID = d.ExperimentID
	r.deviceID = d.DeviceID
	r.slot = d.Slot
	r.purpose = d.Purpose
	r.status = StatusAdmitted
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsAdmitted() bool {
	return r.status == StatusAdmitted
}

func (r *Reservation) Details() Details {
	return Details{
		UserID:       r.userID,
		LabID:        r.labID,
		ExperimentID: r.experimentID,
		DeviceID:     r.deviceID,
		Slot:         r.slot,
		Purpose:      r.purpose,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) LabID() uuid.UUID        { return r.labID }
func (r *Reservation) ExperimentID() uuid.UUID { return r.experimentID }
func (r *Reservation) DeviceID() uuid.UUID     { return r.deviceID }
func (r *Reservation) Slot() TimeSlot          { return r.slot }
func (r *Reservation) Purpose() string         { return r.purpose }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
