//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lab-reservation/internal/handler/dto/request"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LabID        uuid.UUID
	ExperimentID uuid.UUID
	DeviceIDs    []uuid.UUID
	Date         string
	StartTime    string
	EndTime      string
	Purpose      string
	Status       string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		LabID:        uuid.New(),
		ExperimentID: uuid.New(),
		DeviceIDs:    []uuid.UUID{uuid.New()},
		Date:         time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02"),
		StartTime:    "09:00",
		EndTime:      "10:00",
		Purpose:      "cell culture",
		Status:       "admitted",
		CreatedAt:    time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		UserID:       b.UserID,
		LabID:        b.LabID,
		ExperimentID: b.ExperimentID,
		DeviceIDs:    b.DeviceIDs,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Purpose:      b.Purpose,
	}
}

func (b *ReservationBuilder) BuildCreateCommand() commands.CreateReservationCommand {
	return b.BuildCreateRequestDTO().ToCommand()
}

func (b *ReservationBuilder) BuildAdmittedResult() *commands.AdmissionResult {
	return &commands.AdmissionResult{
		ReservationID:  b.ID,
		ReservationIDs: []uuid.UUID{b.ID},
		Admitted:       true,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       "Dr. Sato",
		UserRole:       "doctor",
		LabID:          b.LabID,
		LabName:        "Academic Lab A",
		ExperimentID:   b.ExperimentID,
		ExperimentName: "PCR",
		DeviceID:       b.DeviceIDs[0],
		DeviceName:     "Thermal Cycler",
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Hours:          1,
		Purpose:        b.Purpose,
		Status:         b.Status,
		Admitted:       b.Status == "admitted",
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
