package response

import (
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	MessageAdmitted = "Reservation admitted"
	MessageUpdated  = "Reservation updated"
)

type AdmissionResponse struct {
	Success        bool        `json:"success"`
	Admitted       bool        `json:"admitted"`
	ReservationID  uuid.UUID   `json:"reservationId"`
	ReservationIDs []uuid.UUID `json:"reservationIds,omitempty"`
	Message        string      `json:"message"`
	Reason         string      `json:"reason,omitempty"`
}

// FromAdmissionResult renders both admitted and recorded-rejection outcomes.
func FromAdmissionResult(r *commands.AdmissionResult, successMessage string) *AdmissionResponse {
	if r.Admitted {
		return &AdmissionResponse{
			Success:        true,
			Admitted:       true,
			ReservationID:  r.ReservationID,
			ReservationIDs: r.ReservationIDs,
			Message:        successMessage,
		}
	}

	resp := &AdmissionResponse{
		Success:       false,
		Admitted:      false,
		ReservationID: r.ReservationID,
	}
	if r.Conflict != nil {
		resp.Message = r.Conflict.Error()
		var ce *reservation.ConflictError
		if errs.As(r.Conflict, &ce) {
			resp.Reason = string(ce.Reason)
		}
	}
	return resp
}

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	UserName       string    `json:"userName"`
	UserRole       string    `json:"userRole"`
	LabID          uuid.UUID `json:"labId"`
	LabName        string    `json:"labName"`
	ExperimentID   uuid.UUID `json:"experimentId"`
	ExperimentName string    `json:"experimentName"`
	DeviceID       uuid.UUID `json:"deviceId"`
	DeviceName     string    `json:"deviceName"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Hours          float64   `json:"hours"`
	Purpose        string    `json:"purpose"`
	Status         string    `json:"status"`
	Admitted       bool      `json:"admitted"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "copy reservation view")
	}
	return &resp, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type LaboratoryUsageResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	UsageHours     float64   `json:"usageHours"`
	OperatingHours float64   `json:"operatingHours"`
}

func FromLaboratoryUsage(v *queries.LaboratoryUsageView) *LaboratoryUsageResponse {
	return &LaboratoryUsageResponse{
		ID:             v.ID,
		Name:           v.Name,
		Category:       v.Category,
		Status:         v.Status,
		UsageHours:     v.UsageHours,
		OperatingHours: v.OperatingHours,
	}
}

type DeviceUsageResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CurrentHours float64   `json:"currentHours"`
	TotalHours   float64   `json:"totalHours"`
}

func FromDeviceUsage(v *queries.DeviceUsageView) *DeviceUsageResponse {
	return &DeviceUsageResponse{
		ID:           v.ID,
		Name:         v.Name,
		Category:     v.Category,
		Status:       v.Status,
		CurrentHours: v.CurrentHours,
		TotalHours:   v.TotalHours,
	}
}
