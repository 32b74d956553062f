package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

type PersonHandler struct {
	roster *usecase.RosterService
}

func NewPersonHandler(roster *usecase.RosterService) *PersonHandler {
	return &PersonHandler{roster: roster}
}

func (h *PersonHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.ListPeople)
	r.POST("", h.CreatePerson)
	r.GET("/:id", h.GetPerson)
	r.PATCH("/:id", h.UpdatePerson)
	r.DELETE("/:id", h.DeletePerson)
}

// ListPeople godoc
// @Summary List roster members
// @Description Returns the roster ordered by rank seniority then name.
// @Tags People
// @Produce json
// @Param active query bool false "Only active members"
// @Success 200 {array} PersonPayload
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	people, err := h.roster.ListPeople(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list people"))
		return
	}

	payloads := make([]PersonPayload, 0, len(people))
	for _, person := range people {
		payloads = append(payloads, newPersonPayload(person))
	}

	c.JSON(http.StatusOK, payloads)
}

// GetPerson godoc
// @Summary Get a roster member
// @Tags People
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} PersonPayload
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	person, err := h.roster.GetPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrPersonNotFound, Status: http.StatusNotFound, Message: "person not found"},
		}, http.StatusInternalServerError, "failed to get person")
		return
	}

	c.JSON(http.StatusOK, newPersonPayload(*person))
}

// CreatePerson godoc
// @Summary Register a roster member
// @Tags People
// @Accept json
// @Produce json
// @Param request body PersonCreateRequest true "Person create request"
// @Success 201 {object} PersonPayload
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req PersonCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid person payload"))
		return
	}

	person, err := h.roster.CreatePerson(c.Request.Context(), usecase.CreatePersonInput{
		Name:       req.Name,
		WarName:    req.WarName,
		NationalID: req.NationalID,
		EmployeeID: req.EmployeeID,
		Rank:       req.Rank,
		Quadro:     req.Quadro,
		Phone:      req.Phone,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrValidation, Status: http.StatusBadRequest, Message: "invalid person data"},
		}, http.StatusInternalServerError, "failed to create person")
		return
	}

	c.JSON(http.StatusCreated, newPersonPayload(person))
}

// UpdatePerson godoc
// @Summary Update a roster member
// @Tags People
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param request body PersonUpdateRequest true "Partial person update"
// @Success 200 {object} PersonPayload
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/people/{id} [patch]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req PersonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid person payload"))
		return
	}

	person, err := h.roster.UpdatePerson(c.Request.Context(), c.Param("id"), usecase.UpdatePersonInput{
		Name:       req.Name,
		WarName:    req.WarName,
		NationalID: req.NationalID,
		EmployeeID: req.EmployeeID,
		Rank:       req.Rank,
		Quadro:     req.Quadro,
		Phone:      req.Phone,
		Active:     req.Active,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrValidation, Status: http.StatusBadRequest, Message: "invalid person data"},
			{Err: usecase.ErrPersonNotFound, Status: http.StatusNotFound, Message: "person not found"},
		}, http.StatusInternalServerError, "failed to update person")
		return
	}

	c.JSON(http.StatusOK, newPersonPayload(person))
}

// DeletePerson godoc
// @Summary Delete a roster member
// @Description Refused while ledger or leave entries still reference the person.
// @Tags People
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.roster.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrPersonNotFound, Status: http.StatusNotFound, Message: "person not found"},
			{Err: usecase.ErrPersonReferenced, Status: http.StatusConflict, Message: "person is referenced by ledger or leave entries"},
		}, http.StatusInternalServerError, "failed to delete person")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "person deleted"})
}
