//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"lab-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details(t *testing.T) reservation.Details {
	t.Helper()
	slot, err := reservation.ParseTimeSlot("2026-03-10", "09:00", "11:00")
	require.NoError(t, err)
	return reservation.Details{
		UserID:       uuid.New(),
		LabID:        uuid.New(),
		ExperimentID: uuid.New(),
		DeviceID:     uuid.New(),
		Slot:         slot,
		Purpose:      "calibration run",
	}
}

func TestReservation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("承認済みで作成", func(t *testing.T) {
		d := details(t)
		r, err := reservation.NewAdmitted(d, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.True(t, r.IsAdmitted())
		assert.Equal(t, d, r.Details())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("拒否記録は台帳対象外", func(t *testing.T) {
		r, err := reservation.NewRejected(details(t), now)
		require.NoError(t, err)
		assert.False(t, r.IsAdmitted())
		assert.Equal(t, reservation.StatusRejected, r.Status())
	})

	t.Run("デバイスがなければエラー", func(t *testing.T) {
		d := details(t)
		d.DeviceID = uuid.Nil
		_, err := reservation.NewAdmitted(d, now)
		require.ErrorIs(t, err, reservation.ErrMissingDevice)
	})

	t.Run("Rescheduleは同一IDのまま承認に変わる", func(t *testing.T) {
		d := details(t)
		r, err := reservation.NewRejected(d, now)
		require.NoError(t, err)
		id := r.ID()

		next := details(t)
		next.UserID = d.UserID
		later := now.Add(time.Hour)
		require.NoError(t, r.Reschedule(next, later))

		assert.Equal(t, id, r.ID())
		assert.True(t, r.IsAdmitted())
		assert.Equal(t, next.LabID, r.LabID())
		assert.Equal(t, next.DeviceID, r.DeviceID())
		assert.Equal(t, d.UserID, r.UserID())
		assert.Equal(t, later, r.UpdatedAt())
	})
}
