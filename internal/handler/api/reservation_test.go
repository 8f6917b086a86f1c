//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/handler/api"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/httptest"
	"lab-reservation/tests/common/testutil"
	commandsmock "lab-reservation/tests/mock/commands"
	queriesmock "lab-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/reservations", s.handler.Create)
	s.router.GET("/api/reservations/:id", s.handler.Get)
	s.router.PUT("/api/reservations/:id", s.handler.Update)
	s.router.GET("/api/laboratories/:id/reservations", s.handler.ListByLaboratory)
	s.router.GET("/api/laboratories/:id/usage", s.handler.LaboratoryUsage)
	s.router.GET("/api/devices/:id/usage", s.handler.DeviceUsage)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	admitted := b.BuildAdmittedResult()

	missing := []testCaseReservation{
		{name: "未指定: user_id", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: lab_id", mutate: testutil.Field("lab_id", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: experiment_id", mutate: testutil.Field("experiment_id", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: device_ids", mutate: testutil.Field("device_ids", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "未指定: purpose", mutate: testutil.Field("purpose", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "空の装置リスト", mutate: testutil.Field("device_ids", []string{}), expectCode: http.StatusBadRequest},
		{name: "不正なUUID", mutate: testutil.Field("lab_id", "lab-1"), expectCode: http.StatusBadRequest},
		{name: "ゼロUUID", mutate: testutil.Field("user_id", uuid.Nil.String()), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 承認されると201を返す", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), b.BuildCreateCommand()).
			Return(admitted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.True(body.Admitted)
		s.Equal(b.ID, body.ReservationID)
		s.Equal(resdto.MessageAdmitted, body.Message)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + b.ID.String()})
	})

	s.Run("error: 入力不備は400でユースケースを呼ばない", func() {
		for _, group := range [][]testCaseReservation{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				})
			}
		}
	})

	s.Run("error: 競合は却下記録のIDとともに400を返す", func() {
		holder := uuid.New()
		rejectedID := uuid.New()
		conflict := reservation.NewConflictError(reservation.ResourceLaboratory, "Academic Lab A", reservation.ReasonReservedByDoctor, holder)

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(&commands.AdmissionResult{ReservationID: rejectedID, Admitted: false, Conflict: conflict}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusBadRequest, rec.Code)
		var body resdto.AdmissionResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.False(body.Success)
		s.False(body.Admitted)
		s.Equal(rejectedID, body.ReservationID)
		s.Equal(string(reservation.ReasonReservedByDoctor), body.Reason)
		s.Contains(body.Message, "reserved by a doctor")
	})

	s.Run("error: ユースケースのエラーを適切なステータスに変換する", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "laboratory not found",
				commandsError:  errs.Mark(commands.ErrLaboratoryNotFound, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "laboratory not found",
			},
			{
				name:           "role mismatch",
				commandsError:  errs.Mark(commands.ErrLaboratoryRoleMismatch, errs.ErrRoleMismatch),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "laboratory category does not match",
			},
			{
				name:           "device under maintenance",
				commandsError:  errs.Mark(commands.ErrDeviceUnderMaintenance, errs.ErrUnderMaintenance),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "maintenance",
			},
			{
				name:           "database failure",
				commandsError:  errs.Mark(commands.ErrDatabaseOperationFailed, errs.ErrInternal),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("success: 指定したフィールドだけをコマンドに渡す", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.UpdateReservationCommand) (*commands.AdmissionResult, error) {
				s.Equal(id, cmd.ReservationID)
				s.Require().NotNil(cmd.EndTime)
				s.Equal("12:00", *cmd.EndTime)
				s.Nil(cmd.StartTime)
				s.Nil(cmd.LabID)
				s.Empty(cmd.DeviceIDs)
				return &commands.AdmissionResult{ReservationID: id, ReservationIDs: []uuid.UUID{id}, Admitted: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"end_time": "12:00"})

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Admitted)
		s.Equal(resdto.MessageUpdated, body.Message)
	})

	s.Run("error: 空の更新は400", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrEmptyUpdate, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no fields to update")
	})

	s.Run("error: 存在しない予約は404", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrReservationNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"purpose": "rerun"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 更新時の競合は記録されず400", func() {
		conflict := reservation.NewConflictError(reservation.ResourceDevice, "Thermal Cycler", reservation.ReasonAlreadyReserved, uuid.New())
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(conflict, errs.ErrSchedulingConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"start_time": "09:30"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already reserved")
	})

	s.Run("error: 不正なIDは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/abc", map[string]any{"purpose": "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})
}

// ================================================================================
// TestReads
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewReservationBuilder()
	view := b.BuildView()

	s.Run("success: キャメルケースで返す", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+b.ID.String(), nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
		s.Equal(b.LabID.String(), body["labId"])
		s.Equal("09:00", body["startTime"])
		s.Equal(true, body["admitted"])
	})

	s.Run("error: 見つからなければ404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrReservationNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+uuid.New().String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListByLaboratory() {
	b := builder.NewReservationBuilder()

	s.Run("success: 日付ごとの予約一覧", func() {
		s.mockQueries.EXPECT().ListByLaboratory(gomock.Any(), b.LabID, "2030-03-10").
			Return([]*queries.ReservationView{b.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/laboratories/"+b.LabID.String()+"/reservations?date=2030-03-10", nil)

		var body struct {
			Reservations []resdto.ReservationResponse `json:"reservations"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reservations, 1)
		s.Equal(b.ID, body.Reservations[0].ID)
	})

	s.Run("error: 日付形式が不正なら400", func() {
		s.mockQueries.EXPECT().ListByLaboratory(gomock.Any(), b.LabID, "10/03/2030").
			Return(nil, errs.Mark(queries.ErrInvalidDate, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/laboratories/"+b.LabID.String()+"/reservations?date=10/03/2030", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *ReservationHandlerTestSuite) TestUsage() {
	labID := uuid.New()
	deviceID := uuid.New()

	s.Run("success: 研究室の利用時間", func() {
		s.mockQueries.EXPECT().LaboratoryUsage(gomock.Any(), labID).
			Return(&queries.LaboratoryUsageView{ID: labID, Name: "Lab", UsageHours: 2.5, OperatingHours: 2.5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/laboratories/"+labID.String()+"/usage", nil)

		var body resdto.LaboratoryUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(2.5, body.UsageHours, 1e-9)
	})

	s.Run("success: 装置の利用時間", func() {
		s.mockQueries.EXPECT().DeviceUsage(gomock.Any(), deviceID).
			Return(&queries.DeviceUsageView{ID: deviceID, CurrentHours: 7, TotalHours: 7}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/devices/"+deviceID.String()+"/usage", nil)

		var body resdto.DeviceUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(7.0, body.CurrentHours, 1e-9)
	})

	s.Run("error: 装置が存在しなければ404", func() {
		s.mockQueries.EXPECT().DeviceUsage(gomock.Any(), deviceID).
			Return(nil, errs.Mark(queries.ErrDeviceNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/devices/"+deviceID.String()+"/usage", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "device not found")
	})
}
