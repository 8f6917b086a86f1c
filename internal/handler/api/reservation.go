package api

import (
	"net/http"

	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/httperr"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Admit a reservation for a laboratory, experiment and one or more devices. A scheduling conflict is recorded as a rejected reservation and answered with 400.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.AdmissionResponse
// @Failure 400 {object} resdto.AdmissionResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if !result.Admitted {
		c.JSON(http.StatusBadRequest, resdto.FromAdmissionResult(result, ""))
		return
	}
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromAdmissionResult(result, resdto.MessageAdmitted))
}

// @Summary Update reservation
// @Description Overwrite the supplied fields of a reservation and re-run admission. Usage counters are reversed and reapplied atomically.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.AdmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.UpdateReservation(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdmissionResult(result, resdto.MessageUpdated))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List laboratory reservations
// @Description List admitted and rejected reservations of a laboratory on one date
// @Tags laboratories
// @Produce json
// @Param id path string true "Laboratory ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /laboratories/{id}/reservations [get]
func (h *ReservationHandler) ListByLaboratory(c *gin.Context) {
	labID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid laboratory id", nil)
		return
	}
	views, err := h.q.ListByLaboratory(c.Request.Context(), labID, c.Query("date"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resp})
}

// @Summary Laboratory usage
// @Description Accumulated usage and operating hours of a laboratory
// @Tags laboratories
// @Produce json
// @Param id path string true "Laboratory ID"
// @Success 200 {object} resdto.LaboratoryUsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /laboratories/{id}/usage [get]
func (h *ReservationHandler) LaboratoryUsage(c *gin.Context) {
	labID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid laboratory id", nil)
		return
	}
	view, err := h.q.LaboratoryUsage(c.Request.Context(), labID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLaboratoryUsage(view))
}

// @Summary Device usage
// @Description Current and total usage hours of a device
// @Tags devices
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} resdto.DeviceUsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /devices/{id}/usage [get]
func (h *ReservationHandler) DeviceUsage(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid device id", nil)
		return
	}
	view, err := h.q.DeviceUsage(c.Request.Context(), deviceID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeviceUsage(view))
}
