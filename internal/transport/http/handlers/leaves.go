package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

type LeaveHandler struct {
	leaves *usecase.LeaveService
}

func NewLeaveHandler(leaves *usecase.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaves}
}

func (h *LeaveHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.ListLeaves)
	r.POST("", h.RecordLeave)
}

// ListLeaves godoc
// @Summary List leave records
// @Description Returns the leave register, newest start date first.
// @Tags Leaves
// @Produce json
// @Success 200 {array} LeavePayload
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leaves [get]
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	records, err := h.leaves.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list leaves"))
		return
	}

	payloads := make([]LeavePayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, newLeavePayload(record))
	}

	c.JSON(http.StatusOK, payloads)
}

// RecordLeave godoc
// @Summary Record a leave period
// @Tags Leaves
// @Accept json
// @Produce json
// @Param request body LeaveCreateRequest true "Leave request"
// @Success 201 {object} LeavePayload
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leaves [post]
func (h *LeaveHandler) RecordLeave(c *gin.Context) {
	var req LeaveCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid leave payload"))
		return
	}

	leaveType, err := domain.ParseLeaveType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "unknown leave type"))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid start date, expected YYYY-MM-DD"))
		return
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid end date, expected YYYY-MM-DD"))
		return
	}

	record, err := h.leaves.Record(c.Request.Context(), usecase.RecordLeaveInput{
		PersonID:  req.PersonID,
		Type:      leaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Note:      req.Note,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrValidation, Status: http.StatusBadRequest, Message: "invalid leave data"},
			{Err: usecase.ErrPersonNotFound, Status: http.StatusNotFound, Message: "person not found"},
			{Err: usecase.ErrPersonInactive, Status: http.StatusUnprocessableEntity, Message: "person is inactive"},
		}, http.StatusInternalServerError, "failed to record leave")
		return
	}

	c.JSON(http.StatusCreated, newLeavePayload(record))
}
