//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, role) VALUES ($1, $2, $3)",
		userID, name, role)
	require.NoError(t, err)
	return userID
}

func CreateTestLaboratory(t *testing.T, db DBLike, name, category, status string) uuid.UUID {
	t.Helper()

	labID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO laboratories (id, name, category, status) VALUES ($1, $2, $3, $4)",
		labID, name, category, status)
	require.NoError(t, err)
	return labID
}

func CreateTestExperiment(t *testing.T, db DBLike, labID uuid.UUID, name, category string) uuid.UUID {
	t.Helper()

	experimentID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO experiments (id, name, category, lab_id) VALUES ($1, $2, $3, $4)",
		experimentID, name, category, labID)
	require.NoError(t, err)
	return experimentID
}

func CreateTestDevice(t *testing.T, db DBLike, name, status string) uuid.UUID {
	t.Helper()

	deviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO devices (id, name, category, status) VALUES ($1, $2, 'general', $3)",
		deviceID, name, status)
	require.NoError(t, err)
	return deviceID
}

// LinkDevice registers the device for the experiment and places it in the experiment's laboratory.
func LinkDevice(t *testing.T, db DBLike, deviceID, experimentID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO device_experiments (device_id, experiment_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		deviceID, experimentID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO laboratory_devices (lab_id, device_id)
		SELECT lab_id, $1 FROM experiments WHERE id = $2
		ON CONFLICT DO NOTHING`,
		deviceID, experimentID)
	require.NoError(t, err)
}

func CreateTestMaintenance(t *testing.T, db DBLike, deviceID uuid.UUID, status string, startAt, endAt *time.Time) uuid.UUID {
	t.Helper()

	maintenanceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO maintenances (id, device_id, status, start_at, end_at) VALUES ($1, $2, $3, $4, $5)",
		maintenanceID, deviceID, status, startAt, endAt)
	require.NoError(t, err)
	return maintenanceID
}

type LaboratoryCounters struct {
	UsageMinutes     int64
	OperatingMinutes int64
}

func GetLaboratoryCounters(t *testing.T, db DBLike, labID uuid.UUID) LaboratoryCounters {
	t.Helper()

	var c LaboratoryCounters
	err := db.QueryRow(context.Background(),
		"SELECT usage_minutes, operating_minutes FROM laboratories WHERE id = $1", labID).
		Scan(&c.UsageMinutes, &c.OperatingMinutes)
	require.NoError(t, err)
	return c
}

type DeviceCounters struct {
	CurrentMinutes int64
	TotalMinutes   int64
}

func GetDeviceCounters(t *testing.T, db DBLike, deviceID uuid.UUID) DeviceCounters {
	t.Helper()

	var c DeviceCounters
	err := db.QueryRow(context.Background(),
		"SELECT current_minutes, total_minutes FROM devices WHERE id = $1", deviceID).
		Scan(&c.CurrentMinutes, &c.TotalMinutes)
	require.NoError(t, err)
	return c
}

func GetCompletedCount(t *testing.T, db DBLike, experimentID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT completed_count FROM experiments WHERE id = $1", experimentID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountReservations(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE status = $1", status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
