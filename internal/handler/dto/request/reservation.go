package request

import (
	"lab-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	UserID       uuid.UUID   `json:"user_id" binding:"required"`
	LabID        uuid.UUID   `json:"lab_id" binding:"required"`
	ExperimentID uuid.UUID   `json:"experiment_id" binding:"required"`
	DeviceIDs    []uuid.UUID `json:"device_ids" binding:"required,min=1"`
	Date         string      `json:"date" binding:"required"`
	StartTime    string      `json:"start_time" binding:"required"`
	EndTime      string      `json:"end_time" binding:"required"`
	Purpose      string      `json:"purpose" binding:"required,max=1000"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		UserID:       r.UserID,
		LabID:        r.LabID,
		ExperimentID: r.ExperimentID,
		DeviceIDs:    r.DeviceIDs,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Purpose:      r.Purpose,
	}
}

// UpdateReservationRequest only overwrites the fields present in the body.
type UpdateReservationRequest struct {
	LabID        *uuid.UUID  `json:"lab_id,omitempty"`
	ExperimentID *uuid.UUID  `json:"experiment_id,omitempty"`
	DeviceIDs    []uuid.UUID `json:"device_ids,omitempty"`
	Date         *string     `json:"date,omitempty"`
	StartTime    *string     `json:"start_time,omitempty"`
	EndTime      *string     `json:"end_time,omitempty"`
	Purpose      *string     `json:"purpose,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateReservationRequest) ToCommand(id uuid.UUID) commands.UpdateReservationCommand {
	return commands.UpdateReservationCommand{
		ReservationID: id,
		LabID:         r.LabID,
		ExperimentID:  r.ExperimentID,
		DeviceIDs:     r.DeviceIDs,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Purpose:       r.Purpose,
	}
}
