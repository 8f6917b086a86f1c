package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Device struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Category          string      `json:"category"`
	Status            string      `json:"status"`
	CurrentMinutes    int64       `json:"current_minutes"`
	TotalMinutes      int64       `json:"total_minutes"`
	PurchaseDate      pgtype.Date `json:"purchase_date"`
	PurchaseCostCents int64       `json:"purchase_cost_cents"`
	LifespanYears     int32       `json:"lifespan_years"`
}

type DeviceExperiment struct {
	DeviceID     uuid.UUID `json:"device_id"`
	ExperimentID uuid.UUID `json:"experiment_id"`
}

type Experiment struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	LabID          uuid.UUID `json:"lab_id"`
	CompletedCount int32     `json:"completed_count"`
}

type Laboratory struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	UsageMinutes     int64     `json:"usage_minutes"`
	OperatingMinutes int64     `json:"operating_minutes"`
}

type LaboratoryDevice struct {
	LabID    uuid.UUID `json:"lab_id"`
	DeviceID uuid.UUID `json:"device_id"`
}

type Maintenance struct {
	ID       uuid.UUID          `json:"id"`
	DeviceID uuid.UUID          `json:"device_id"`
	Status   string             `json:"status"`
	StartAt  pgtype.Timestamptz `json:"start_at"`
	EndAt    pgtype.Timestamptz `json:"end_at"`
}

type Reservation struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	LabID        uuid.UUID          `json:"lab_id"`
	ExperimentID uuid.UUID          `json:"experiment_id"`
	DeviceID     uuid.UUID          `json:"device_id"`
	Date         pgtype.Date        `json:"date"`
	StartTime    pgtype.Time        `json:"start_time"`
	EndTime      pgtype.Time        `json:"end_time"`
	Purpose      string             `json:"purpose"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type User struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
