package postgres

import (
	"context"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

// PersonRepository implements port.PersonRepository using PostgreSQL.
type PersonRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewPersonRepository wires a PostgreSQL-backed person repository.
func NewPersonRepository(exec pgExecutor) *PersonRepository {
	return &PersonRepository{
		exec:    exec,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository instance operating within the supplied transaction.
func (r *PersonRepository) WithTx(tx pgx.Tx) *PersonRepository {
	if tx == nil {
		return r
	}
	return &PersonRepository{
		exec:    tx,
		builder: r.builder,
	}
}

// Create inserts a new person row.
func (r *PersonRepository) Create(ctx context.Context, person domain.Person) error {
	stmt, args, err := r.builder.Insert("roster.people").
		Columns(
			"id",
			"name",
			"war_name",
			"national_id",
			"employee_id",
			"rank",
			"quadro",
			"phone",
			"active",
			"created_at",
		).
		Values(
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
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert person sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert person: %w", err)
	}

	return nil
}

// GetByID retrieves a person by identifier.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	stmt, args, err := r.builder.
		Select(
			"id",
			"name",
			"war_name",
			"national_id",
			"employee_id",
			"rank",
			"quadro",
			"phone",
			"active",
			"created_at",
		).
		From("roster.people").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select person sql: %w", err)
	}

	row := r.exec.QueryRow(ctx, stmt, args...)

	var (
		person domain.Person
		rank   string
	)
	if err := row.Scan(
		&person.ID,
		&person.Name,
		&person.WarName,
		&person.NationalID,
		&person.EmployeeID,
		&rank,
		&person.Quadro,
		&person.Phone,
		&person.Active,
		&person.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan person: %w", err)
	}
	person.Rank = domain.Rank(rank)

	return &person, nil
}

// Update rewrites the mutable columns of an existing person.
func (r *PersonRepository) Update(ctx context.Context, person domain.Person) error {
	stmt, args, err := r.builder.Update("roster.people").
		Set("name", person.Name).
		Set("war_name", person.WarName).
		Set("national_id", person.NationalID).
		Set("employee_id", person.EmployeeID).
		Set("rank", string(person.Rank)).
		Set("quadro", person.Quadro).
		Set("phone", person.Phone).
		Set("active", person.Active).
		Where(squirrel.Eq{"id": person.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update person sql: %w", err)
	}

	res, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a person row. Ledger and leave references are not cascaded;
// the caller is responsible for reference checks.
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	stmt, args, err := r.builder.Delete("roster.people").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete person sql: %w", err)
	}

	res, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List retrieves people ordered by name. Rank-seniority ordering is applied
// by the caller since the hierarchy lives in the domain layer.
func (r *PersonRepository) List(ctx context.Context, filter port.PersonFilter) ([]domain.Person, error) {
	query := r.builder.
		Select(
			"id",
			"name",
			"war_name",
			"national_id",
			"employee_id",
			"rank",
			"quadro",
			"phone",
			"active",
			"created_at",
		).
		From("roster.people").
		OrderBy("name ASC")

	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list people sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		var (
			person domain.Person
			rank   string
		)
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.WarName,
			&person.NationalID,
			&person.EmployeeID,
			&rank,
			&person.Quadro,
			&person.Phone,
			&person.Active,
			&person.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		person.Rank = domain.Rank(rank)
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}

	return people, nil
}

var _ port.PersonRepository = (*PersonRepository)(nil)
