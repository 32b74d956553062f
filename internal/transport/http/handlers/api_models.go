package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

const dateLayout = "2006-01-02"

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	traceID, _ := c.Get("trace_id")
	traceIDStr, _ := traceID.(string)

	return ErrorResponse{
		Error:   errorMsg,
		TraceID: traceIDStr,
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

// ReadinessResponse reports per-dependency readiness checks.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// PersonPayload is the API view of a roster member.
type PersonPayload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WarName    string    `json:"war_name,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	EmployeeID string    `json:"employee_id,omitempty"`
	Rank       string    `json:"rank"`
	Quadro     string    `json:"quadro,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func newPersonPayload(p domain.Person) PersonPayload {
	return PersonPayload{
		ID:         p.ID,
		Name:       p.Name,
		WarName:    p.WarName,
		NationalID: p.NationalID,
		EmployeeID: p.EmployeeID,
		Rank:       string(p.Rank),
		Quadro:     p.Quadro,
		Phone:      p.Phone,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
	}
}

// PersonCreateRequest defines the payload for registering a roster member.
type PersonCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	WarName    string `json:"war_name"`
	NationalID string `json:"national_id"`
	EmployeeID string `json:"employee_id"`
	Rank       string `json:"rank" binding:"required"`
	Quadro     string `json:"quadro"`
	Phone      string `json:"phone"`
}

// PersonUpdateRequest carries a partial update; absent fields are unchanged.
type PersonUpdateRequest struct {
	Name       *string `json:"name"`
	WarName    *string `json:"war_name"`
	NationalID *string `json:"national_id"`
	EmployeeID *string `json:"employee_id"`
	Rank       *string `json:"rank"`
	Quadro     *string `json:"quadro"`
	Phone      *string `json:"phone"`
	Active     *bool   `json:"active"`
}

// AssignmentPayload is the API view of a ledger entry.
type AssignmentPayload struct {
	ID         string  `json:"id"`
	PersonID   string  `json:"person_id"`
	PersonName string  `json:"person_name,omitempty"`
	PersonRank string  `json:"person_rank,omitempty"`
	Role       string  `json:"role"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}

func newAssignmentPayload(a domain.RoleAssignment) AssignmentPayload {
	payload := AssignmentPayload{
		ID:         a.ID,
		PersonID:   a.PersonID,
		PersonName: a.PersonName,
		PersonRank: string(a.PersonRank),
		Role:       string(a.Role),
		StartDate:  a.StartDate.Format(dateLayout),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format(dateLayout)
		payload.EndDate = &end
	}
	return payload
}

// AssignRequest defines the payload for a role assignment.
type AssignRequest struct {
	PersonID  string `json:"person_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
}

// CloseRequest defines the payload for closing the open entries of a role.
type CloseRequest struct {
	Role    string `json:"role" binding:"required"`
	EndDate string `json:"end_date" binding:"required"`
}

// CloseResponse reports how many ledger entries were terminated.
type CloseResponse struct {
	EntriesClosed int `json:"entries_closed"`
}

// LeavePayload is the API view of a leave register entry.
type LeavePayload struct {
	ID         string `json:"id"`
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name,omitempty"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Note       string `json:"note,omitempty"`
}

func newLeavePayload(l domain.LeaveRecord) LeavePayload {
	return LeavePayload{
		ID:         l.ID,
		PersonID:   l.PersonID,
		PersonName: l.PersonName,
		Type:       string(l.Type),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Note:       l.Note,
	}
}

// LeaveCreateRequest defines the payload for recording a leave period.
type LeaveCreateRequest struct {
	PersonID  string `json:"person_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Note      string `json:"note"`
}

// SummaryResponse is the headcount breakdown.
type SummaryResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// BoardSeatPayload is one occupant line on the composition board.
type BoardSeatPayload struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	PersonRank string `json:"person_rank,omitempty"`
	Since      string `json:"since"`
}

// BoardColumnPayload is the current composition of one role.
type BoardColumnPayload struct {
	Role  string             `json:"role"`
	Seats []BoardSeatPayload `json:"seats"`
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
