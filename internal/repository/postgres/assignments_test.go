package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

func TestAssignmentRepository_AssignWithSuccession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAssignmentRepository(mock)

	startDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	entry := domain.RoleAssignment{
		ID:        "assign-2",
		PersonID:  "person-2",
		Role:      domain.RoleCoordinator,
		StartDate: startDate,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE roster\.role_assignments SET end_date = \$1 WHERE role = \$2 AND end_date IS NULL RETURNING id`).
		WithArgs(startDate, string(domain.RoleCoordinator)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("assign-1"))
	mock.ExpectExec(`INSERT INTO roster\.role_assignments`).
		WithArgs(entry.ID, entry.PersonID, string(entry.Role), entry.StartDate, nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	closed, err := repo.AssignWithSuccession(context.Background(), entry)
	if err != nil {
		t.Fatalf("AssignWithSuccession returned error: %v", err)
	}
	if len(closed) != 1 || closed[0] != "assign-1" {
		t.Fatalf("expected closed entry [assign-1], got %v", closed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentRepository_AssignWithSuccession_RollsBackOnInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAssignmentRepository(mock)

	startDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	entry := domain.RoleAssignment{
		ID:        "assign-2",
		PersonID:  "person-2",
		Role:      domain.RoleCoordinator,
		StartDate: startDate,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE roster\.role_assignments`).
		WithArgs(startDate, string(domain.RoleCoordinator)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("assign-1"))
	mock.ExpectExec(`INSERT INTO roster\.role_assignments`).
		WithArgs(entry.ID, entry.PersonID, string(entry.Role), entry.StartDate, nil).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	if _, err := repo.AssignWithSuccession(context.Background(), entry); err == nil {
		t.Fatal("expected error when insert fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentRepository_CloseOpen_NoOpenEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAssignmentRepository(mock)

	endDate := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE roster\.role_assignments`).
		WithArgs(endDate, string(domain.RoleDeputyCoordinator)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	closed, err := repo.CloseOpen(context.Background(), domain.RoleDeputyCoordinator, endDate)
	if err != nil {
		t.Fatalf("CloseOpen returned error: %v", err)
	}
	if len(closed) != 0 {
		t.Fatalf("expected no closed entries, got %v", closed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentRepository_ListOpenByRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAssignmentRepository(mock)

	startDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "person_id", "role", "start_date", "end_date", "name", "rank"}).
		AddRow("assign-1", "person-1", string(domain.RoleCoordinator), startDate, nil, "Maria Silva", "MAJ BM")

	mock.ExpectQuery(`SELECT .+ FROM roster\.role_assignments a LEFT JOIN roster\.people p`).
		WithArgs(string(domain.RoleCoordinator)).
		WillReturnRows(rows)

	entries, err := repo.ListOpenByRole(context.Background(), domain.RoleCoordinator)
	if err != nil {
		t.Fatalf("ListOpenByRole returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].PersonName != "Maria Silva" {
		t.Fatalf("person name should be joined in, got %q", entries[0].PersonName)
	}
	if entries[0].PersonRank != domain.RankMajor {
		t.Fatalf("person rank should be joined in, got %q", entries[0].PersonRank)
	}
	if entries[0].EndDate != nil {
		t.Fatal("open entry should have no end date")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentRepository_CountByPerson(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAssignmentRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roster\.role_assignments`).
		WithArgs("person-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByPerson(context.Background(), "person-1")
	if err != nil {
		t.Fatalf("CountByPerson returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
