package device

import (
	"time"

	"github.com/google/uuid"
)

type Maintenance struct {
	id       uuid.UUID
	deviceID uuid.UUID
	status   MaintenanceStatus
	startAt  *time.Time
	endAt    *time.Time
}

func ReconstructMaintenance(id, deviceID uuid.UUID, status MaintenanceStatus, startAt, endAt *time.Time) *Maintenance {
	return &Maintenance{
		id:       id,
		deviceID: deviceID,
		status:   status,
		startAt:  startAt,
		endAt:    endAt,
	}
}

// Blocks reports whether the maintenance window keeps the device out of service on date.
// date is a calendar date; the window bounds are read as wall clock days in loc (UTC when nil).
// A missing start never blocks; a missing end is open ended.
func (m *Maintenance) Blocks(date time.Time, loc *time.Location) bool {
	if m.status == MaintenanceCompleted || m.startAt == nil {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}
	day := calendarDay(date)
	if calendarDay(m.startAt.In(loc)).After(day) {
		return false
	}
	if m.endAt != nil && calendarDay(m.endAt.In(loc)).Before(day) {
		return false
	}
	return true
}

func (m *Maintenance) ID() uuid.UUID             { return m.id }
func (m *Maintenance) DeviceID() uuid.UUID       { return m.deviceID }
func (m *Maintenance) Status() MaintenanceStatus { return m.status }
func (m *Maintenance) StartAt() *time.Time       { return m.startAt }
func (m *Maintenance) EndAt() *time.Time         { return m.endAt }

func calendarDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
