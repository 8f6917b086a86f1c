package device

import "errors"

var (
	ErrInvalidStatus            = errors.New("invalid device status")
	ErrInvalidMaintenanceStatus = errors.New("invalid maintenance status")
)

type Status string

const (
	StatusAvailable        Status = "available"
	StatusUnderMaintenance Status = "under_maintenance"
	StatusUnavailable      Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnderMaintenance, StatusUnavailable:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
		return true
	default:
		return false
	}
}

func NewMaintenanceStatus(s string) (MaintenanceStatus, error) {
	st := MaintenanceStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidMaintenanceStatus
	}
	return st, nil
}
