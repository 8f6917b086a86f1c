package shared

import (
	"sort"
	"time"

	"lab-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// SlotKey identifies one resource on one calendar day for admission locking.
type SlotKey struct {
	Resource reservation.Resource
	ID       uuid.UUID
	Date     time.Time
}

func LaboratorySlot(id uuid.UUID, date time.Time) SlotKey {
	return SlotKey{Resource: reservation.ResourceLaboratory, ID: id, Date: reservation.Day(date)}
}

func DeviceSlot(id uuid.UUID, date time.Time) SlotKey {
	return SlotKey{Resource: reservation.ResourceDevice, ID: id, Date: reservation.Day(date)}
}

func (k SlotKey) String() string {
	return string(k.Resource) + ":" + k.ID.String() + ":" + reservation.FormatDate(k.Date)
}

// SortedKeys dedupes keys and orders them so that concurrent lockers never deadlock.
func SortedKeys(keys []SlotKey) []SlotKey {
	seen := make(map[string]struct{}, len(keys))
	out := make([]SlotKey, 0, len(keys))
	for _, k := range keys {
		s := k.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
