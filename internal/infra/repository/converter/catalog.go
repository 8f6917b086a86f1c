package converter

import (
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/user"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.GetUserByIDRow) (*user.User, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(row.ID, row.Name, role), nil
}

func LaboratoryFromRow(row sqlc.Laboratory) (*lab.Laboratory, error) {
	category, err := lab.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}
	status, err := lab.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return lab.ReconstructLaboratory(row.ID, row.Name, category, status, row.UsageMinutes, row.OperatingMinutes), nil
}

func ExperimentFromRow(row sqlc.Experiment) (*lab.Experiment, error) {
	category, err := lab.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}
	return lab.ReconstructExperiment(row.ID, row.Name, category, row.LabID, int(row.CompletedCount)), nil
}

func DeviceFromRow(row sqlc.Device) (*device.Device, error) {
	status, err := device.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return device.ReconstructDevice(row.ID, row.Name, row.Category, status, row.CurrentMinutes, row.TotalMinutes, device.Purchase{
		Date:          pgconv.DatePtrFromPgtype(row.PurchaseDate),
		CostCents:     row.PurchaseCostCents,
		LifespanYears: int(row.LifespanYears),
	}), nil
}

func MaintenanceFromRow(row sqlc.Maintenance) (*device.Maintenance, error) {
	status, err := device.NewMaintenanceStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return device.ReconstructMaintenance(
		row.ID,
		row.DeviceID,
		status,
		pgconv.TimePtrFromPgtype(row.StartAt),
		pgconv.TimePtrFromPgtype(row.EndAt),
	), nil
}
