package memory

import (
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
)

func toUser(r UserRecord) (*user.User, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("decode user role", err)
	}
	return user.ReconstructUser(r.ID, r.Name, role), nil
}

func toLaboratory(r LaboratoryRecord) (*lab.Laboratory, error) {
	category, err := lab.NewCategory(r.Category)
	if err != nil {
		return nil, infra.WrapRepoErr("decode laboratory category", err)
	}
	status, err := lab.NewStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("decode laboratory status", err)
	}
	return lab.ReconstructLaboratory(r.ID, r.Name, category, status, r.UsageMinutes, r.OperatingMinutes), nil
}

func toExperiment(r ExperimentRecord) (*lab.Experiment, error) {
	category, err := lab.NewCategory(r.Category)
	if err != nil {
		return nil, infra.WrapRepoErr("decode experiment category", err)
	}
	return lab.ReconstructExperiment(r.ID, r.Name, category, r.LabID, r.CompletedCount), nil
}

func toDevice(r DeviceRecord) (*device.Device, error) {
	status, err := device.NewStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("decode device status", err)
	}
	return device.ReconstructDevice(r.ID, r.Name, r.Category, status, r.CurrentMinutes, r.TotalMinutes, device.Purchase{
		Date:          r.PurchaseDate,
		CostCents:     r.PurchaseCostCents,
		LifespanYears: r.LifespanYears,
	}), nil
}

func toMaintenance(r MaintenanceRecord) (*device.Maintenance, error) {
	status, err := device.NewMaintenanceStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("decode maintenance status", err)
	}
	return device.ReconstructMaintenance(r.ID, r.DeviceID, status, r.StartAt, r.EndAt), nil
}

func recordSlot(r ReservationRecord) (reservation.TimeSlot, error) {
	slot, err := reservation.ParseTimeSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return reservation.TimeSlot{}, infra.WrapRepoErr("decode reservation slot", err)
	}
	return slot, nil
}

func toReservation(r ReservationRecord) (*reservation.Reservation, error) {
	slot, err := recordSlot(r)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("decode reservation status", err)
	}
	return reservation.ReconstructReservation(r.ID, reservation.Details{
		UserID:       r.UserID,
		LabID:        r.LabID,
		ExperimentID: r.ExperimentID,
		DeviceID:     r.DeviceID,
		Slot:         slot,
		Purpose:      r.Purpose,
	}, status, r.CreatedAt, r.UpdatedAt), nil
}

func fromReservation(res *reservation.Reservation) ReservationRecord {
	slot := res.Slot()
	return ReservationRecord{
		ID:           res.ID(),
		UserID:       res.UserID(),
		LabID:        res.LabID(),
		ExperimentID: res.ExperimentID(),
		DeviceID:     res.DeviceID(),
		Date:         slot.DateString(),
		StartTime:    slot.Start().String(),
		EndTime:      slot.End().String(),
		Purpose:      res.Purpose(),
		Status:       res.Status().String(),
		CreatedAt:    res.CreatedAt(),
		UpdatedAt:    res.UpdatedAt(),
	}
}
