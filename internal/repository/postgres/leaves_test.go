package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

func TestLeaveRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRepository(mock)

	record := domain.LeaveRecord{
		ID:        "leave-1",
		PersonID:  "person-1",
		Type:      domain.LeaveVacation,
		StartDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.July, 30, 0, 0, 0, 0, time.UTC),
		Note:      "annual leave",
	}

	mock.ExpectExec(`INSERT INTO roster\.leave_records`).
		WithArgs(record.ID, record.PersonID, string(record.Type), record.StartDate, record.EndDate, record.Note).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLeaveRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRepository(mock)

	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 30, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "person_id", "type", "start_date", "end_date", "note", "name"}).
		AddRow("leave-1", "person-1", "vacation", start, end, "", "Maria Silva").
		AddRow("leave-2", "person-2", "medical_leave", start, end, "", nil)

	mock.ExpectQuery(`SELECT .+ FROM roster\.leave_records l LEFT JOIN roster\.people p`).
		WillReturnRows(rows)

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].PersonName != "Maria Silva" {
		t.Fatalf("person name should be joined in, got %q", records[0].PersonName)
	}
	if records[1].PersonName != "" {
		t.Fatalf("deleted person should leave the name empty, got %q", records[1].PersonName)
	}
	if records[1].Type != domain.LeaveMedical {
		t.Fatalf("leave type not mapped, got %q", records[1].Type)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLeaveRepository_CountByPerson(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roster\.leave_records`).
		WithArgs("person-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByPerson(context.Background(), "person-1")
	if err != nil {
		t.Fatalf("CountByPerson returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
