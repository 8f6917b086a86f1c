package lab

import (
	"github.com/google/uuid"
)

// Laboratory counters are kept in minutes so that ledger postings invert exactly.
type Laboratory struct {
	id               uuid.UUID
	name             string
	category         Category
	status           Status
	usageMinutes     int64
	operatingMinutes int64
}

func ReconstructLaboratory(
	id uuid.UUID,
	name string,
	category Category,
	status Status,
	usageMinutes, operatingMinutes int64,
) *Laboratory {
	return &Laboratory{
		id:               id,
		name:             name,
		category:         category,
		status:           status,
		usageMinutes:     usageMinutes,
		operatingMinutes: operatingMinutes,
	}
}

func (l *Laboratory) IsAvailable() bool {
	return l.status == StatusAvailable
}

// AddUsage posts a signed number of minutes to both lab counters.
func (l *Laboratory) AddUsage(minutes int64) {
	l.usageMinutes += minutes
	l.operatingMinutes += minutes
}

func (l *Laboratory) ID() uuid.UUID           { return l.id }
func (l *Laboratory) Name() string            { return l.name }
func (l *Laboratory) Category() Category      { return l.category }
func (l *Laboratory) Status() Status          { return l.status }
func (l *Laboratory) UsageMinutes() int64     { return l.usageMinutes }
func (l *Laboratory) OperatingMinutes() int64 { return l.operatingMinutes }
func (l *Laboratory) UsageHours() float64     { return MinutesToHours(l.usageMinutes) }
func (l *Laboratory) OperatingHours() float64 { return MinutesToHours(l.operatingMinutes) }

func MinutesToHours(m int64) float64 {
	return float64(m) / 60.0
}
