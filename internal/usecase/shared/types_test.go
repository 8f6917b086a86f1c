//go:build unit

package shared_test

import (
	"testing"
	"time"

	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	labID := uuid.MustParse("00000000-0000-0000-0000-0000000000aa")
	devA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	devB := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	date := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	keys := shared.SortedKeys([]shared.SlotKey{
		shared.LaboratorySlot(labID, date),
		shared.DeviceSlot(devB, date),
		shared.DeviceSlot(devA, date),
		shared.DeviceSlot(devB, date),
	})

	require.Len(t, keys, 3)
	assert.Equal(t, "device:"+devA.String()+":2026-03-10", keys[0].String())
	assert.Equal(t, "device:"+devB.String()+":2026-03-10", keys[1].String())
	assert.Equal(t, "laboratory:"+labID.String()+":2026-03-10", keys[2].String())
}
