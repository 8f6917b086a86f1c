//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/readstore"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"
	"lab-reservation/internal/usecase/queries"
	readstoremock "lab-reservation/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

var testDate = time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)

// =============================================================================
// Catalog Tests
// =============================================================================

func TestCatalogReadStore_LaboratoryByID(t *testing.T) {
	ctx := context.Background()
	labID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockCatalogReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: laboratory found",
			setupMock: func(m *readstoremock.MockCatalogReadQueries) {
				m.EXPECT().GetLaboratoryByID(ctx, gomock.Any(), labID).Return(sqlc.Laboratory{
					ID: labID, Name: "Bio-1", Category: "research", Status: "available", UsageMinutes: 90, OperatingMinutes: 120,
				}, nil)
			},
		},
		{
			name: "error: laboratory not found",
			setupMock: func(m *readstoremock.MockCatalogReadQueries) {
				m.EXPECT().GetLaboratoryByID(ctx, gomock.Any(), labID).Return(sqlc.Laboratory{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockCatalogReadQueries) {
				m.EXPECT().GetLaboratoryByID(ctx, gomock.Any(), labID).Return(sqlc.Laboratory{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: unknown category stored",
			setupMock: func(m *readstoremock.MockCatalogReadQueries) {
				m.EXPECT().GetLaboratoryByID(ctx, gomock.Any(), labID).Return(sqlc.Laboratory{
					ID: labID, Name: "Bio-1", Category: "clinical", Status: "available",
				}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
			store := readstore.NewCatalogReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			l, err := store.LaboratoryByID(ctx, labID)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bio-1", l.Name())
			assert.Equal(t, int64(90), l.UsageMinutes())
			assert.InDelta(t, 2.0, l.OperatingHours(), 1e-9)
		})
	}
}

func TestCatalogReadStore_DeviceAndMaintenance(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()
	purchased := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: 購入情報付きの装置を復元する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetDeviceByID(ctx, gomock.Any(), deviceID).Return(sqlc.Device{
			ID: deviceID, Name: "Centrifuge", Category: "bio", Status: "under_maintenance",
			CurrentMinutes: 300, TotalMinutes: 3000,
			PurchaseDate:      pgconv.DateToPgtype(purchased),
			PurchaseCostCents: 1_200_000, LifespanYears: 8,
		}, nil)

		d, err := store.DeviceByID(ctx, deviceID)
		require.NoError(t, err)
		assert.False(t, d.IsAvailable())
		require.NotNil(t, d.Purchase().Date)
		assert.True(t, purchased.Equal(*d.Purchase().Date))
		assert.Equal(t, 8, d.Purchase().LifespanYears)
	})

	t.Run("success: 保守記録を復元する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListMaintenancesByDevice(ctx, gomock.Any(), deviceID).Return([]sqlc.Maintenance{
			{ID: uuid.New(), DeviceID: deviceID, Status: "scheduled", StartAt: pgconv.TimeToPgtype(testDate)},
		}, nil)

		ms, err := store.MaintenancesByDevice(ctx, deviceID)
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.True(t, ms[0].Blocks(testDate.AddDate(0, 0, 3), time.UTC))
		assert.Nil(t, ms[0].EndAt())
	})

	t.Run("error: 紐付け確認のDBエラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		store := readstore.NewCatalogReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().IsDeviceLinkedToExperiment(ctx, gomock.Any(), gomock.Any()).Return(false, errDBConnectionLost)

		_, err := store.IsDeviceLinked(ctx, deviceID, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Booking Tests
// =============================================================================

func TestBookingReadStore_LaboratoryBookings(t *testing.T) {
	ctx := context.Background()
	labID := uuid.New()
	exclude := uuid.New()

	t.Run("success: 予約枠と保持者の役割を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
		bookingID := uuid.New()

		mockQueries.EXPECT().ListAdmittedBookingsByLaboratory(ctx, gomock.Any(), sqlc.ListAdmittedBookingsByLaboratoryParams{
			LabID:     labID,
			Date:      pgconv.DateToPgtype(testDate),
			ExcludeID: exclude,
		}).Return([]sqlc.ListAdmittedBookingsByLaboratoryRow{
			{
				ID:         bookingID,
				Date:       pgconv.DateToPgtype(testDate),
				StartTime:  pgconv.MinutesToPgtypeTime(9 * 60),
				EndTime:    pgconv.MinutesToPgtypeTime(11 * 60),
				HolderRole: "doctor",
			},
		}, nil)

		got, err := store.LaboratoryBookings(ctx, labID, testDate, exclude)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, bookingID, got[0].ReservationID)
		assert.True(t, got[0].HolderRole.IsDoctor())
		assert.Equal(t, int64(120), got[0].Slot.Minutes())
	})

	t.Run("error: 不正な時刻はDBエラー扱い", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAdmittedBookingsByLaboratory(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListAdmittedBookingsByLaboratoryRow{
			{ID: uuid.New(), Date: pgconv.DateToPgtype(testDate), StartTime: pgtype.Time{}, EndTime: pgconv.MinutesToPgtypeTime(60), HolderRole: "doctor"},
		}, nil)

		_, err := store.LaboratoryBookings(ctx, labID, testDate, exclude)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ReservationForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), id).Return(sqlc.Reservation{}, pgx.ErrNoRows)

		_, err := store.ReservationForUpdate(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: 予約を復元する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), id).Return(sqlc.Reservation{
			ID:        id,
			UserID:    uuid.New(),
			LabID:     uuid.New(),
			DeviceID:  uuid.New(),
			Date:      pgconv.DateToPgtype(testDate),
			StartTime: pgconv.MinutesToPgtypeTime(13 * 60),
			EndTime:   pgconv.MinutesToPgtypeTime(14*60 + 30),
			Status:    "rejected",
			CreatedAt: pgconv.TimeToPgtype(testDate),
			UpdatedAt: pgconv.TimeToPgtype(testDate),
		}, nil)

		res, err := store.ReservationForUpdate(ctx, id)
		require.NoError(t, err)
		assert.False(t, res.IsAdmitted())
		assert.Equal(t, "13:00", res.Slot().Start().String())
		assert.Equal(t, int64(90), res.Slot().Minutes())
	})
}

// =============================================================================
// View Tests
// =============================================================================

func TestReservationReadStore_FindByLaboratoryAndDate(t *testing.T) {
	ctx := context.Background()
	labID := uuid.New()
	created := time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC)

	row := sqlc.ListReservationViewsByLaboratoryAndDateRow{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		UserName:       "Dr. Kato",
		UserRole:       "doctor",
		LabID:          labID,
		LabName:        "Bio-1",
		ExperimentID:   uuid.New(),
		ExperimentName: "PCR",
		DeviceID:       uuid.New(),
		DeviceName:     "Centrifuge",
		Date:           pgconv.DateToPgtype(testDate),
		StartTime:      pgconv.MinutesToPgtypeTime(9 * 60),
		EndTime:        pgconv.MinutesToPgtypeTime(10*60 + 30),
		Purpose:        "calibration",
		Status:         "admitted",
		CreatedAt:      pgconv.TimeToPgtype(created),
		UpdatedAt:      pgconv.TimeToPgtype(created),
	}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListReservationViewsByLaboratoryAndDate(ctx, gomock.Any(), sqlc.ListReservationViewsByLaboratoryAndDateParams{
		LabID: labID,
		Date:  pgconv.DateToPgtype(testDate),
	}).Return([]sqlc.ListReservationViewsByLaboratoryAndDateRow{row}, nil)

	got, err := store.FindByLaboratoryAndDate(ctx, labID, testDate)
	require.NoError(t, err)

	want := []*queries.ReservationView{{
		ID:             row.ID,
		UserID:         row.UserID,
		UserName:       "Dr. Kato",
		UserRole:       "doctor",
		LabID:          labID,
		LabName:        "Bio-1",
		ExperimentID:   row.ExperimentID,
		ExperimentName: "PCR",
		DeviceID:       row.DeviceID,
		DeviceName:     "Centrifuge",
		Date:           "2030-03-10",
		StartTime:      "09:00",
		EndTime:        "10:30",
		Hours:          1.5,
		Purpose:        "calibration",
		Status:         "admitted",
		Admitted:       true,
		CreatedAt:      created,
		UpdatedAt:      created,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageReadStore_DeviceUsage(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
	store := readstore.NewUsageReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetDeviceByID(ctx, gomock.Any(), deviceID).Return(sqlc.Device{}, pgx.ErrNoRows)

	_, err := store.DeviceUsage(ctx, deviceID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
