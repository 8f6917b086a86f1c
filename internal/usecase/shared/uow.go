package shared

import (
	"context"
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/usage"
	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: One write transaction per admission attempt. An error from fn rolls back
	// every staged write, ledger postings included.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is scoped to a single Within call and must not escape it.
type Tx interface {
	Reads() CommandReads
	Reservations() ReservationRepository
	Ledger() LedgerRepository
	Locks() SlotLocker
}

// CommandReads resolve write-side state inside the current transaction.
// Missing rows are reported as infra.RepositoryError with KindNotFound.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	LaboratoryByID(ctx context.Context, id uuid.UUID) (*lab.Laboratory, error)
	ExperimentByID(ctx context.Context, id uuid.UUID) (*lab.Experiment, error)
	DeviceByID(ctx context.Context, id uuid.UUID) (*device.Device, error)
	IsDeviceLinked(ctx context.Context, deviceID, experimentID uuid.UUID) (bool, error)
	MaintenancesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*device.Maintenance, error)
	// Bookings return admitted reservations only. exclude may be uuid.Nil.
	LaboratoryBookings(ctx context.Context, labID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error)
	DeviceBookings(ctx context.Context, deviceID uuid.UUID, date time.Time, exclude uuid.UUID) ([]reservation.Booking, error)
	// ReservationForUpdate locks the row until the transaction ends.
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
}

type LedgerRepository interface {
	// Post applies a signed posting as atomic counter increments.
	Post(ctx context.Context, p usage.Posting) error
}

type SlotLocker interface {
	// Lock serializes admissions on the given resource days until the transaction ends.
	Lock(ctx context.Context, keys ...SlotKey) error
}
