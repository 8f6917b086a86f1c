package memory

import (
	"encoding/json"
	"os"
	"time"

	"lab-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Records mirror the relational schema. Counters are stored in minutes.
type UserRecord struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type LaboratoryRecord struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	UsageMinutes     int64     `json:"usage_minutes"`
	OperatingMinutes int64     `json:"operating_minutes"`
}

type ExperimentRecord struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	LabID          uuid.UUID `json:"lab_id"`
	CompletedCount int       `json:"completed_count"`
}

type DeviceRecord struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Status            string     `json:"status"`
	CurrentMinutes    int64      `json:"current_minutes"`
	TotalMinutes      int64      `json:"total_minutes"`
	PurchaseDate      *time.Time `json:"purchase_date,omitempty"`
	PurchaseCostCents int64      `json:"purchase_cost_cents"`
	LifespanYears     int        `json:"lifespan_years"`
}

type DeviceLink struct {
	DeviceID     uuid.UUID `json:"device_id"`
	ExperimentID uuid.UUID `json:"experiment_id"`
}

type MaintenanceRecord struct {
	ID       uuid.UUID  `json:"id"`
	DeviceID uuid.UUID  `json:"device_id"`
	Status   string     `json:"status"`
	StartAt  *time.Time `json:"start_at,omitempty"`
	EndAt    *time.Time `json:"end_at,omitempty"`
}

type ReservationRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	LabID        uuid.UUID `json:"lab_id"`
	ExperimentID uuid.UUID `json:"experiment_id"`
	DeviceID     uuid.UUID `json:"device_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Fixture is the serialisable form of the whole store.
type Fixture struct {
	Users        []UserRecord        `json:"users"`
	Laboratories []LaboratoryRecord  `json:"laboratories"`
	Experiments  []ExperimentRecord  `json:"experiments"`
	Devices      []DeviceRecord      `json:"devices"`
	DeviceLinks  []DeviceLink        `json:"device_experiments"`
	Maintenances []MaintenanceRecord `json:"maintenances"`
	Reservations []ReservationRecord `json:"reservations"`
}

func LoadFixture(path string) (Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, errs.Wrapf(err, "read fixture %s", path)
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return Fixture{}, errs.Wrapf(err, "decode fixture %s", path)
	}
	return f, nil
}
