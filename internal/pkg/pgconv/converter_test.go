//go:build unit

package pgconv_test

import (
	"database/sql"
	"testing"
	"time"

	"lab-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 570, 1439} {
		got, err := pgconv.MinutesFromPgtypeTime(pgconv.MinutesToPgtypeTime(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := pgconv.MinutesFromPgtypeTime(pgtype.Time{})
	require.ErrorIs(t, err, pgconv.ErrInvalidTime)

	_, err = pgconv.MinutesFromPgtypeTime(pgtype.Time{Microseconds: 1_500_000, Valid: true})
	require.ErrorIs(t, err, pgconv.ErrInvalidTime)
}

func TestDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	pd := pgconv.DateToPgtype(time.Date(2026, 3, 10, 22, 0, 0, 0, tokyo))

	d, err := pgconv.DateFromPgtype(pd)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = pgconv.DateFromPgtype(pgtype.Date{})
	require.ErrorIs(t, err, pgconv.ErrInvalidDate)
	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(nil))
}
