package device

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	Date          *time.Time
	CostCents     int64
	LifespanYears int
}

type Device struct {
	id             uuid.UUID
	name           string
	category       string
	status         Status
	currentMinutes int64
	totalMinutes   int64
	purchase       Purchase
}

func ReconstructDevice(
	id uuid.UUID,
	name, category string,
	status Status,
	currentMinutes, totalMinutes int64,
	purchase Purchase,
) *Device {
	return &Device{
		id:             id,
		name:           name,
		category:       category,
		status:         status,
		currentMinutes: currentMinutes,
		totalMinutes:   totalMinutes,
		purchase:       purchase,
	}
}

func (d *Device) IsAvailable() bool {
	return d.status == StatusAvailable
}

// AddUsage posts a signed number of minutes to the current and lifetime counters.
func (d *Device) AddUsage(minutes int64) {
	d.currentMinutes += minutes
	d.totalMinutes += minutes
}

func (d *Device) ID() uuid.UUID         { return d.id }
func (d *Device) Name() string          { return d.name }
func (d *Device) Category() string      { return d.category }
func (d *Device) Status() Status        { return d.status }
func (d *Device) CurrentMinutes() int64 { return d.currentMinutes }
func (d *Device) TotalMinutes() int64   { return d.totalMinutes }
func (d *Device) Purchase() Purchase    { return d.purchase }

func (d *Device) CurrentHours() float64 { return float64(d.currentMinutes) / 60.0 }
func (d *Device) TotalHours() float64   { return float64(d.totalMinutes) / 60.0 }
