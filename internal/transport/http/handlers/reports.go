package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reports *usecase.ReportService
}

func NewReportHandler(reports *usecase.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/summary", h.Summary)
	r.GET("/board", h.Board)
	r.GET("/export", h.Export)
}

// Summary godoc
// @Summary Roster headcount summary
// @Tags Reports
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reports.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to build summary"))
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Total:    summary.Total,
		Active:   summary.Active,
		Inactive: summary.Inactive,
	})
}

// Board godoc
// @Summary Current composition board
// @Description Returns the current occupants of every role, each column ordered by rank.
// @Tags Reports
// @Produce json
// @Success 200 {array} BoardColumnPayload
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/board [get]
func (h *ReportHandler) Board(c *gin.Context) {
	columns, err := h.reports.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to build board"))
		return
	}

	payloads := make([]BoardColumnPayload, 0, len(columns))
	for _, column := range columns {
		seats := make([]BoardSeatPayload, 0, len(column.Seats))
		for _, seat := range column.Seats {
			seats = append(seats, BoardSeatPayload{
				PersonID:   seat.PersonID,
				PersonName: seat.PersonName,
				PersonRank: string(seat.PersonRank),
				Since:      seat.Since,
			})
		}
		payloads = append(payloads, BoardColumnPayload{
			Role:  string(column.Role),
			Seats: seats,
		})
	}

	c.JSON(http.StatusOK, payloads)
}

// Export godoc
// @Summary Export the roster as an XLSX workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	workbook, err := h.reports.ExportWorkbook(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to export roster"))
		return
	}

	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
