package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

type AssignmentHandler struct {
	ledger *usecase.LedgerService
}

func NewAssignmentHandler(ledger *usecase.LedgerService) *AssignmentHandler {
	return &AssignmentHandler{ledger: ledger}
}

func (h *AssignmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.ListHistory)
	r.POST("", h.Assign)
	r.GET("/current", h.CurrentOccupants)
	r.POST("/close", h.CloseOpenEntries)
}

// ListHistory godoc
// @Summary List ledger entries
// @Description Returns the role history ledger, newest start date first.
// @Tags Assignments
// @Produce json
// @Param role query string false "Filter by role"
// @Success 200 {array} AssignmentPayload
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assignments [get]
func (h *AssignmentHandler) ListHistory(c *gin.Context) {
	var role *domain.Role
	if raw := c.Query("role"); raw != "" {
		parsed, err := domain.ParseRole(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, NewErrorResponse(c, "unknown role"))
			return
		}
		role = &parsed
	}

	entries, err := h.ledger.FullHistory(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list assignments"))
		return
	}

	payloads := make([]AssignmentPayload, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, newAssignmentPayload(entry))
	}

	c.JSON(http.StatusOK, payloads)
}

// CurrentOccupants godoc
// @Summary Current occupants of a role
// @Tags Assignments
// @Produce json
// @Param role query string true "Role"
// @Success 200 {array} AssignmentPayload
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assignments/current [get]
func (h *AssignmentHandler) CurrentOccupants(c *gin.Context) {
	role, err := domain.ParseRole(c.Query("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "unknown role"))
		return
	}

	entries, err := h.ledger.CurrentOccupants(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list occupants"))
		return
	}

	payloads := make([]AssignmentPayload, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, newAssignmentPayload(entry))
	}

	c.JSON(http.StatusOK, payloads)
}

// Assign godoc
// @Summary Record a role assignment
// @Description For single-seat roles the previous occupant is closed with the new start date.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Assignment request"
// @Success 201 {object} AssignmentPayload
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid assignment payload"))
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "unknown role"))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid start date, expected YYYY-MM-DD"))
		return
	}

	entry, err := h.ledger.Assign(c.Request.Context(), usecase.AssignInput{
		PersonID:  req.PersonID,
		Role:      role,
		StartDate: startDate,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrValidation, Status: http.StatusBadRequest, Message: "invalid assignment data"},
			{Err: usecase.ErrPersonNotFound, Status: http.StatusNotFound, Message: "person not found"},
			{Err: usecase.ErrPersonInactive, Status: http.StatusUnprocessableEntity, Message: "person is inactive"},
		}, http.StatusInternalServerError, "failed to record assignment")
		return
	}

	c.JSON(http.StatusCreated, newAssignmentPayload(entry))
}

// CloseOpenEntries godoc
// @Summary Close the open entries of a role
// @Description Terminates every open entry for the role, leaving the seat vacant.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body CloseRequest true "Close request"
// @Success 200 {object} CloseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assignments/close [post]
func (h *AssignmentHandler) CloseOpenEntries(c *gin.Context) {
	var req CloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid close payload"))
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "unknown role"))
		return
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid end date, expected YYYY-MM-DD"))
		return
	}

	closed, err := h.ledger.CloseOpenEntry(c.Request.Context(), role, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to close assignments"))
		return
	}

	c.JSON(http.StatusOK, CloseResponse{EntriesClosed: closed})
}
