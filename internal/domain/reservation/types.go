package reservation

type Status string

const (
	StatusAdmitted Status = "admitted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAdmitted, StatusRejected:
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

// Resource names the kind of bookable thing a conflict was found on.
type Resource string

const (
	ResourceLaboratory Resource = "laboratory"
	ResourceDevice     Resource = "device"
)

type ConflictReason string

const (
	ReasonReservedByDoctor     ConflictReason = "reserved_by_doctor"
	ReasonReservedByResearcher ConflictReason = "reserved_by_researcher"
	ReasonAlreadyReserved      ConflictReason = "already_reserved"
)
