package errs

// Failure categories of the admission engine. Specific errors are marked with one of these.
var (
	ErrNotFound           = New("not found")
	ErrRoleMismatch       = New("role mismatch")
	ErrUnavailable        = New("resource unavailable")
	ErrSchedulingConflict = New("scheduling conflict")
	ErrUnderMaintenance   = New("device under maintenance")
	ErrInvalidInput       = New("invalid input")
	ErrExperimentNotInLab = New("experiment not in laboratory")
	ErrNotLinked          = New("device not linked to experiment")
	ErrInternal           = New("internal error")
)
