//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"lab-reservation/internal/domain/usage"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/usecase/shared"
	repositorymock "lab-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Post Tests
// =============================================================================

func TestLedgerRepository_Post(t *testing.T) {
	ctx := context.Background()
	posting := usage.Posting{
		LabID:        uuid.New(),
		ExperimentID: uuid.New(),
		DeviceIDs: []uuid.UUID{
			uuid.MustParse("00000000-0000-0000-0000-0000000000d2"),
			uuid.MustParse("00000000-0000-0000-0000-0000000000d1"),
		},
		Minutes: 120,
		Runs:    1,
	}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockLedgerWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: 研究室・装置・実験の全カウンタを加算し装置はID順に更新する",
			setupMock: func(m *repositorymock.MockLedgerWriteQueries, db *mockDBTX) {
				gomock.InOrder(
					m.EXPECT().AddLaboratoryUsage(ctx, db, sqlc.AddLaboratoryUsageParams{Minutes: 120, ID: posting.LabID}).Return(int64(1), nil),
					m.EXPECT().AddDeviceUsage(ctx, db, sqlc.AddDeviceUsageParams{Minutes: 120, ID: posting.DeviceIDs[1]}).Return(int64(1), nil),
					m.EXPECT().AddDeviceUsage(ctx, db, sqlc.AddDeviceUsageParams{Minutes: 120, ID: posting.DeviceIDs[0]}).Return(int64(1), nil),
					m.EXPECT().AddExperimentCompleted(ctx, db, sqlc.AddExperimentCompletedParams{Runs: 1, ID: posting.ExperimentID}).Return(int64(1), nil),
				)
			},
		},
		{
			name: "error: 研究室が存在しない",
			setupMock: func(m *repositorymock.MockLedgerWriteQueries, db *mockDBTX) {
				m.EXPECT().AddLaboratoryUsage(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: 装置の更新でDBエラー",
			setupMock: func(m *repositorymock.MockLedgerWriteQueries, db *mockDBTX) {
				m.EXPECT().AddLaboratoryUsage(ctx, db, gomock.Any()).Return(int64(1), nil)
				m.EXPECT().AddDeviceUsage(ctx, db, gomock.Any()).Return(int64(0), errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: 実験が存在しない",
			setupMock: func(m *repositorymock.MockLedgerWriteQueries, db *mockDBTX) {
				m.EXPECT().AddLaboratoryUsage(ctx, db, gomock.Any()).Return(int64(1), nil)
				m.EXPECT().AddDeviceUsage(ctx, db, gomock.Any()).Return(int64(1), nil).Times(2)
				m.EXPECT().AddExperimentCompleted(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockLedgerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLedgerRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Post(ctx, posting)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}

	t.Run("success: 取消の仕訳は負数で加算する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockLedgerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLedgerRepository(mockQueries, mockDB)

		reversal := usage.Posting{LabID: posting.LabID, ExperimentID: posting.ExperimentID, DeviceIDs: posting.DeviceIDs[:1], Minutes: 120, Runs: 1}.Negate()
		mockQueries.EXPECT().AddLaboratoryUsage(ctx, mockDB, sqlc.AddLaboratoryUsageParams{Minutes: -120, ID: posting.LabID}).Return(int64(1), nil)
		mockQueries.EXPECT().AddDeviceUsage(ctx, mockDB, sqlc.AddDeviceUsageParams{Minutes: -120, ID: posting.DeviceIDs[0]}).Return(int64(1), nil)
		mockQueries.EXPECT().AddExperimentCompleted(ctx, mockDB, sqlc.AddExperimentCompletedParams{Runs: -1, ID: posting.ExperimentID}).Return(int64(1), nil)

		require.NoError(t, repo.Post(ctx, reversal))
	})
}

// =============================================================================
// Lock Tests
// =============================================================================

func TestSlotLocker_Lock(t *testing.T) {
	ctx := context.Background()
	labID := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	deviceID := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	date := mustDate(t, "2030-03-10")

	t.Run("success: キーを整列・重複排除して順にロックする", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
		mockDB := &mockDBTX{}
		locker := repository.NewSlotLocker(mockQueries, mockDB)

		gomock.InOrder(
			mockQueries.EXPECT().AcquireSlotLock(ctx, mockDB, "device:"+deviceID.String()+":2030-03-10").Return(nil),
			mockQueries.EXPECT().AcquireSlotLock(ctx, mockDB, "laboratory:"+labID.String()+":2030-03-10").Return(nil),
		)

		err := locker.Lock(ctx,
			shared.LaboratorySlot(labID, date),
			shared.DeviceSlot(deviceID, date),
			shared.LaboratorySlot(labID, date),
		)
		require.NoError(t, err)
	})

	t.Run("error: ロック取得失敗はDBエラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
		mockDB := &mockDBTX{}
		locker := repository.NewSlotLocker(mockQueries, mockDB)

		mockQueries.EXPECT().AcquireSlotLock(ctx, mockDB, gomock.Any()).Return(errDBConnectionLost)

		err := locker.Lock(ctx, shared.LaboratorySlot(labID, date))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
