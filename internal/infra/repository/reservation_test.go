//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	repositorymock "lab-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := reservation.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newAdmitted(t *testing.T) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.ParseTimeSlot("2030-03-10", "09:30", "11:00")
	require.NoError(t, err)
	res, err := reservation.NewAdmitted(reservation.Details{
		UserID:       uuid.New(),
		LabID:        uuid.New(),
		ExperimentID: uuid.New(),
		DeviceID:     uuid.New(),
		Slot:         slot,
		Purpose:      "spectrometry",
	}, time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return res
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: 予約を登録する"},
		{name: "error: 主キー重複", returnErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: 外部キー違反", returnErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: CHECK制約違反", returnErr: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
		{name: "error: DBエラー", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)
			res := newAdmitted(t)

			mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, "admitted", arg.Status)
					assert.Equal(t, int64(570*60_000_000), arg.StartTime.Microseconds)
					assert.Equal(t, int64(660*60_000_000), arg.EndTime.Microseconds)
					assert.True(t, arg.Date.Valid)
					return tc.returnErr
				})

			err := repo.Create(ctx, res)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: 予約を更新する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)
		res := newAdmitted(t)

		mockQueries.EXPECT().UpdateReservation(ctx, mockDB, gomock.Any()).Return(int64(1), nil)
		assert.NoError(t, repo.Update(ctx, res))
	})

	t.Run("error: 対象行がない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateReservation(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
		err := repo.Update(ctx, newAdmitted(t))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
