package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserRole       string    `json:"user_role"`
	LabID          uuid.UUID `json:"lab_id"`
	LabName        string    `json:"lab_name"`
	ExperimentID   uuid.UUID `json:"experiment_id"`
	ExperimentName string    `json:"experiment_name"`
	DeviceID       uuid.UUID `json:"device_id"`
	DeviceName     string    `json:"device_name"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Hours          float64   `json:"hours"`
	Purpose        string    `json:"purpose"`
	Status         string    `json:"status"`
	Admitted       bool      `json:"admitted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LaboratoryUsageView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	UsageHours     float64   `json:"usage_hours"`
	OperatingHours float64   `json:"operating_hours"`
}

type DeviceUsageView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CurrentHours float64   `json:"current_hours"`
	TotalHours   float64   `json:"total_hours"`
}
