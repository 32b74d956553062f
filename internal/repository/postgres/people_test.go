package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

func TestPersonRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	createdAt := time.Now().UTC()
	person := domain.Person{
		ID:         "person-1",
		Name:       "Maria Silva",
		WarName:    "Silva",
		NationalID: "123456789",
		EmployeeID: "55511",
		Rank:       domain.RankCaptain,
		Quadro:     "QOC",
		Phone:      "21999990000",
		Active:     true,
		CreatedAt:  createdAt,
	}

	mock.ExpectExec(`INSERT INTO roster\.people`).
		WithArgs(
			person.ID,
			person.Name,
			person.WarName,
			person.NationalID,
			person.EmployeeID,
			string(person.Rank),
			person.Quadro,
			person.Phone,
			person.Active,
			person.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Create(context.Background(), person); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersonRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM roster\.people`).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "war_name", "national_id", "employee_id", "rank", "quadro", "phone", "active", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersonRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	person := domain.Person{ID: "ghost", Name: "Ghost", Rank: domain.RankSoldier}

	mock.ExpectExec(`UPDATE roster\.people`).
		WithArgs(
			person.Name,
			person.WarName,
			person.NationalID,
			person.EmployeeID,
			string(person.Rank),
			person.Quadro,
			person.Phone,
			person.Active,
			person.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.Update(context.Background(), person); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersonRepository_List_ActiveOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	createdAt := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "name", "war_name", "national_id", "employee_id", "rank", "quadro", "phone", "active", "created_at",
	}).AddRow(
		"person-1", "Maria Silva", "Silva", "123", "555", "CAP BM", "QOC", "", true, createdAt,
	)

	mock.ExpectQuery(`SELECT .+ FROM roster\.people WHERE active = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(rows)

	people, err := repo.List(context.Background(), port.PersonFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected 1 person, got %d", len(people))
	}
	if people[0].Rank != domain.RankCaptain {
		t.Fatalf("rank not mapped, got %q", people[0].Rank)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersonRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	mock.ExpectExec(`DELETE FROM roster\.people`).
		WithArgs("person-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := repo.Delete(context.Background(), "person-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
