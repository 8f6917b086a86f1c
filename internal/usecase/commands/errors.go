package commands

import (
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrLaboratoryNotFound  = errs.New("laboratory not found")
	ErrExperimentNotFound  = errs.New("experiment not found")
	ErrDeviceNotFound      = errs.New("device not found")
	ErrReservationNotFound = errs.New("reservation not found")

	ErrRoleNotPermitted        = errs.New("role is not permitted to make reservations")
	ErrLaboratoryRoleMismatch  = errs.New("laboratory category does not match requester role")
	ErrExperimentRoleMismatch  = errs.New("experiment category does not match requester role")
	ErrLaboratoryUnavailable   = errs.New("laboratory is not available")
	ErrDeviceUnavailable       = errs.New("device is not available")
	ErrExperimentNotInLab      = errs.New("experiment does not belong to the laboratory")
	ErrDeviceNotLinked         = errs.New("device is not registered for the experiment")
	ErrDeviceUnderMaintenance  = errs.New("device has scheduled maintenance on this date")
	ErrNoDevices               = errs.New("at least one device is required")
	ErrEmptyUpdate             = errs.New("no fields to update")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Sentinels stay unmarked so that errs.Is can tell them apart; the category is
// attached once on the way out of the use case.
var taxonomy = []struct {
	err      error
	category error
}{
	{ErrUserNotFound, errs.ErrNotFound},
	{ErrLaboratoryNotFound, errs.ErrNotFound},
	{ErrExperimentNotFound, errs.ErrNotFound},
	{ErrDeviceNotFound, errs.ErrNotFound},
	{ErrReservationNotFound, errs.ErrNotFound},
	{ErrRoleNotPermitted, errs.ErrRoleMismatch},
	{ErrLaboratoryRoleMismatch, errs.ErrRoleMismatch},
	{ErrExperimentRoleMismatch, errs.ErrRoleMismatch},
	{ErrLaboratoryUnavailable, errs.ErrUnavailable},
	{ErrDeviceUnavailable, errs.ErrUnavailable},
	{ErrExperimentNotInLab, errs.ErrExperimentNotInLab},
	{ErrDeviceNotLinked, errs.ErrNotLinked},
	{ErrDeviceUnderMaintenance, errs.ErrUnderMaintenance},
	{ErrNoDevices, errs.ErrInvalidInput},
	{ErrEmptyUpdate, errs.ErrInvalidInput},
	{ErrDatabaseOperationFailed, errs.ErrInternal},
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, t := range taxonomy {
		if errs.Is(err, t.err) {
			return errs.Mark(err, t.category)
		}
	}
	return err
}

// lookupErr turns a store read failure into the engine's taxonomy.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return storeErr(err)
}

func storeErr(err error) error {
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func invalidInput(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}
