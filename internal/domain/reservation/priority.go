package reservation

import (
	"errors"
	"fmt"

	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// ErrConflict matches every *ConflictError via errors.Is.
var ErrConflict = errors.New("scheduling conflict")

// Booking is an admitted reservation that currently holds a slot.
type Booking struct {
	ReservationID uuid.UUID
	Slot          TimeSlot
	HolderRole    user.Role
}

// Arbitrate classifies why a new request loses against an admitted holder.
// Holders are never evicted, so there is no outcome that admits the requester.
func Arbitrate(holder, requester user.Role) ConflictReason {
	switch {
	case holder == user.RoleDoctor:
		return ReasonReservedByDoctor
	case holder == user.RoleResearcher && requester == user.RoleDoctor:
		return ReasonReservedByResearcher
	default:
		return ReasonAlreadyReserved
	}
}

// FindOverlap returns the first booking whose slot overlaps slot.
func FindOverlap(slot TimeSlot, bookings []Booking) (Booking, bool) {
	for _, b := range bookings {
		if slot.Overlaps(b.Slot) {
			return b, true
		}
	}
	return Booking{}, false
}

type ConflictError struct {
	Resource      Resource
	ResourceName  string
	Reason        ConflictReason
	ReservationID uuid.UUID
}

func NewConflictError(resource Resource, name string, reason ConflictReason, holding uuid.UUID) *ConflictError {
	return &ConflictError{
		Resource:      resource,
		ResourceName:  name,
		Reason:        reason,
		ReservationID: holding,
	}
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case ReasonReservedByDoctor:
		return fmt.Sprintf("%s %q is reserved by a doctor at this time", e.Resource, e.ResourceName)
	case ReasonReservedByResearcher:
		return fmt.Sprintf("%s %q is reserved by a researcher at this time", e.Resource, e.ResourceName)
	default:
		return fmt.Sprintf("%s %q is already reserved at this time", e.Resource, e.ResourceName)
	}
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
