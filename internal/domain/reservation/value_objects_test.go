//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"lab-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) reservation.TimeOfDay {
	t.Helper()
	v, err := reservation.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  int
		errIs error
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "23:59", want: 1439},
		{input: "9:30", errIs: reservation.ErrInvalidTime},
		{input: "24:00", errIs: reservation.ErrInvalidTime},
		{input: "12:60", errIs: reservation.ErrInvalidTime},
		{input: "12-30", errIs: reservation.ErrInvalidTime},
		{input: "09:30:00", errIs: reservation.ErrInvalidTime},
		{input: "", errIs: reservation.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reservation.ParseTimeOfDay(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := reservation.ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"2026-3-10", "10/03/2026", "2026-02-30", "2026-03-10T00:00", ""} {
		t.Run(bad, func(t *testing.T) {
			_, err := reservation.ParseDate(bad)
			require.ErrorIs(t, err, reservation.ErrInvalidDate)
		})
	}
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("開始が終了より前なら成功", func(t *testing.T) {
		slot, err := reservation.ParseTimeSlot("2026-03-10", "09:00", "10:30")
		require.NoError(t, err)
		assert.Equal(t, int64(90), slot.Minutes())
		assert.InDelta(t, 1.5, slot.Hours(), 1e-9)
		assert.Equal(t, "2026-03-10", slot.DateString())
		assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC), slot.EndAt())
	})

	t.Run("開始と終了が同じならエラー", func(t *testing.T) {
		_, err := reservation.ParseTimeSlot("2026-03-10", "09:00", "09:00")
		require.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
	})

	t.Run("開始が終了より後ならエラー", func(t *testing.T) {
		_, err := reservation.ParseTimeSlot("2026-03-10", "11:00", "10:00")
		require.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
	})

	t.Run("過去日付は拒否", func(t *testing.T) {
		slot, err := reservation.ParseTimeSlot("2026-03-09", "09:00", "10:00")
		require.NoError(t, err)

		today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
		require.ErrorIs(t, slot.ValidateNotPast(today), reservation.ErrDateInPast)
	})

	t.Run("当日は許可", func(t *testing.T) {
		slot, err := reservation.ParseTimeSlot("2026-03-10", "09:00", "10:00")
		require.NoError(t, err)

		today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
		require.NoError(t, slot.ValidateNotPast(today))
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		aStart     string
		aEnd       string
		bStart     string
		bEnd       string
		wantResult bool
	}{
		{name: "完全一致", aStart: "09:00", aEnd: "10:00", bStart: "09:00", bEnd: "10:00", wantResult: true},
		{name: "部分的に重なる", aStart: "09:00", aEnd: "10:00", bStart: "09:30", bEnd: "10:30", wantResult: true},
		{name: "AがBを包含", aStart: "08:00", aEnd: "12:00", bStart: "09:00", bEnd: "10:00", wantResult: true},
		{name: "BがAを包含", aStart: "09:00", aEnd: "10:00", bStart: "08:00", bEnd: "12:00", wantResult: true},
		{name: "終了と開始が接する", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", wantResult: false},
		{name: "開始と終了が接する", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "10:00", wantResult: false},
		{name: "離れている", aStart: "09:00", aEnd: "10:00", bStart: "13:00", bEnd: "14:00", wantResult: false},
		{name: "1分だけ重なる", aStart: "09:00", aEnd: "10:01", bStart: "10:00", bEnd: "11:00", wantResult: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart, aEnd := mustTime(t, tt.aStart), mustTime(t, tt.aEnd)
			bStart, bEnd := mustTime(t, tt.bStart), mustTime(t, tt.bEnd)

			assert.Equal(t, tt.wantResult, reservation.Overlaps(aStart, aEnd, bStart, bEnd))
			assert.Equal(t, tt.wantResult, reservation.Overlaps(bStart, bEnd, aStart, aEnd), "overlap must be symmetric")
		})
	}

	t.Run("日付が異なれば重ならない", func(t *testing.T) {
		a, err := reservation.ParseTimeSlot("2026-03-10", "09:00", "10:00")
		require.NoError(t, err)
		b, err := reservation.ParseTimeSlot("2026-03-11", "09:00", "10:00")
		require.NoError(t, err)
		assert.False(t, a.Overlaps(b))
	})
}
