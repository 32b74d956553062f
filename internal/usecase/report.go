package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
)

// RosterSummary is the headcount breakdown shown on the reports screen.
type RosterSummary struct {
	Total    int
	Active   int
	Inactive int
}

// BoardSeat is one occupant line on the composition board.
type BoardSeat struct {
	PersonID   string
	PersonName string
	PersonRank domain.Rank
	Since      string
}

// BoardColumn is the current composition of one role. An empty Seats slice
// means the role is vacant.
type BoardColumn struct {
	Role  domain.Role
	Seats []BoardSeat
}

// ReportService assembles the dashboard and export views.
type ReportService struct {
	people      port.PersonRepository
	assignments port.AssignmentRepository
}

// NewReportService constructs a ReportService.
func NewReportService(people port.PersonRepository, assignments port.AssignmentRepository) *ReportService {
	return &ReportService{people: people, assignments: assignments}
}

// Summary returns total, active, and inactive headcounts.
func (s *ReportService) Summary(ctx context.Context) (RosterSummary, error) {
	people, err := s.people.List(ctx, port.PersonFilter{})
	if err != nil {
		return RosterSummary{}, fmt.Errorf("list people: %w", err)
	}

	summary := RosterSummary{Total: len(people)}
	for _, person := range people {
		if person.Active {
			summary.Active++
		} else {
			summary.Inactive++
		}
	}

	return summary, nil
}

// Board returns the current occupants of every role, each column ordered by
// rank seniority.
func (s *ReportService) Board(ctx context.Context) ([]BoardColumn, error) {
	columns := make([]BoardColumn, 0, len(domain.Roles()))

	for _, role := range domain.Roles() {
		entries, err := s.assignments.ListOpenByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("list open assignments for %s: %w", role, err)
		}

		seats := make([]BoardSeat, 0, len(entries))
		for _, entry := range entries {
			seats = append(seats, BoardSeat{
				PersonID:   entry.PersonID,
				PersonName: entry.PersonName,
				PersonRank: entry.PersonRank,
				Since:      entry.StartDate.Format("2006-01-02"),
			})
		}

		sort.SliceStable(seats, func(i, j int) bool {
			return seats[i].PersonRank.Weight() < seats[j].PersonRank.Weight()
		})

		columns = append(columns, BoardColumn{Role: role, Seats: seats})
	}

	return columns, nil
}

// ExportWorkbook builds an XLSX workbook with a roster sheet and a role
// history sheet, returned as raw bytes ready for download.
func (s *ReportService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	people, err := s.people.List(ctx, port.PersonFilter{})
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	sort.SliceStable(people, func(i, j int) bool {
		wi, wj := people[i].Rank.Weight(), people[j].Rank.Weight()
		if wi != wj {
			return wi < wj
		}
		return people[i].Name < people[j].Name
	})

	history, err := s.assignments.ListHistory(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list assignment history: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const rosterSheet = "Roster"
	if err := f.SetSheetName(f.GetSheetName(0), rosterSheet); err != nil {
		return nil, fmt.Errorf("rename roster sheet: %w", err)
	}

	rosterHeader := []any{"Name", "War Name", "Rank", "Quadro", "National ID", "Employee ID", "Phone", "Active"}
	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return nil, fmt.Errorf("write roster header: %w", err)
	}

	for i, person := range people {
		row := []any{
			person.Name,
			person.WarName,
			string(person.Rank),
			person.Quadro,
			person.NationalID,
			person.EmployeeID,
			person.Phone,
			person.Active,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write roster row: %w", err)
		}
	}

	const historySheet = "Role History"
	if _, err := f.NewSheet(historySheet); err != nil {
		return nil, fmt.Errorf("create history sheet: %w", err)
	}

	historyHeader := []any{"Person", "Rank", "Role", "Start", "End"}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return nil, fmt.Errorf("write history header: %w", err)
	}

	for i, entry := range history {
		end := ""
		if entry.EndDate != nil {
			end = entry.EndDate.Format("2006-01-02")
		}
		row := []any{
			entry.PersonName,
			string(entry.PersonRank),
			string(entry.Role),
			entry.StartDate.Format("2006-01-02"),
			end,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write history row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
