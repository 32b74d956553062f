package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	squirrel "github.com/Masterminds/squirrel"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
)

// AssignmentRepository implements the role history ledger on PostgreSQL.
type AssignmentRepository struct {
	db      pgDatabase
	builder squirrel.StatementBuilderType
}

// NewAssignmentRepository wires a PostgreSQL-backed ledger repository.
func NewAssignmentRepository(db pgDatabase) *AssignmentRepository {
	return &AssignmentRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert appends a ledger entry.
func (r *AssignmentRepository) Insert(ctx context.Context, entry domain.RoleAssignment) error {
	return r.insert(ctx, r.db, entry)
}

func (r *AssignmentRepository) insert(ctx context.Context, exec pgExecutor, entry domain.RoleAssignment) error {
	var endDate any
	if entry.EndDate != nil {
		endDate = *entry.EndDate
	}

	stmt, args, err := r.builder.Insert("roster.role_assignments").
		Columns("id", "person_id", "role", "start_date", "end_date").
		Values(entry.ID, entry.PersonID, string(entry.Role), entry.StartDate, endDate).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert assignment sql: %w", err)
	}

	if _, err := exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	return nil
}

// CloseOpen sets end_date on every open entry for the role and returns the
// IDs that were closed. Closing all open rows rather than the newest one
// repairs duplicate open entries left behind by earlier writers.
func (r *AssignmentRepository) CloseOpen(ctx context.Context, role domain.Role, endDate time.Time) ([]string, error) {
	return r.closeOpen(ctx, r.db, role, endDate)
}

func (r *AssignmentRepository) closeOpen(ctx context.Context, exec pgExecutor, role domain.Role, endDate time.Time) ([]string, error) {
	stmt, args, err := r.builder.Update("roster.role_assignments").
		Set("end_date", endDate).
		Where(squirrel.Eq{"role": string(role)}).
		Where("end_date IS NULL").
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build close open assignments sql: %w", err)
	}

	rows, err := exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("close open assignments: %w", err)
	}
	defer rows.Close()

	closed := make([]string, 0, 1)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan closed assignment id: %w", err)
		}
		closed = append(closed, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate closed assignment ids: %w", err)
	}

	return closed, nil
}

// AssignWithSuccession closes every open entry for the role and inserts the
// new one inside a single transaction, so a crash between the two steps can
// neither leave the seat vacant nor doubly occupied.
func (r *AssignmentRepository) AssignWithSuccession(ctx context.Context, entry domain.RoleAssignment) ([]string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin succession tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	closed, err := r.closeOpen(ctx, tx, entry.Role, entry.StartDate)
	if err != nil {
		return nil, err
	}

	if err := r.insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit succession tx: %w", err)
	}

	return closed, nil
}

const assignmentJoin = "roster.people p ON p.id = a.person_id"

// ListOpenByRole returns the open entries for a role, most recent start
// first, with the person name and rank joined for display.
func (r *AssignmentRepository) ListOpenByRole(ctx context.Context, role domain.Role) ([]domain.RoleAssignment, error) {
	stmt, args, err := r.builder.
		Select("a.id", "a.person_id", "a.role", "a.start_date", "a.end_date", "p.name", "p.rank").
		From("roster.role_assignments a").
		LeftJoin(assignmentJoin).
		Where(squirrel.Eq{"a.role": string(role)}).
		Where("a.end_date IS NULL").
		OrderBy("a.start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build open assignments sql: %w", err)
	}

	return r.queryAssignments(ctx, stmt, args)
}

// ListHistory returns ledger entries ordered by start date descending,
// optionally filtered by role.
func (r *AssignmentRepository) ListHistory(ctx context.Context, role *domain.Role) ([]domain.RoleAssignment, error) {
	query := r.builder.
		Select("a.id", "a.person_id", "a.role", "a.start_date", "a.end_date", "p.name", "p.rank").
		From("roster.role_assignments a").
		LeftJoin(assignmentJoin).
		OrderBy("a.start_date DESC")

	if role != nil {
		query = query.Where(squirrel.Eq{"a.role": string(*role)})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment history sql: %w", err)
	}

	return r.queryAssignments(ctx, stmt, args)
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, stmt string, args []any) ([]domain.RoleAssignment, error) {
	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RoleAssignment, 0)
	for rows.Next() {
		var (
			entry      domain.RoleAssignment
			role       string
			endDate    sql.NullTime
			personName sql.NullString
			personRank sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.PersonID,
			&role,
			&entry.StartDate,
			&endDate,
			&personName,
			&personRank,
		); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}

		entry.Role = domain.Role(role)
		if endDate.Valid {
			closedAt := endDate.Time
			entry.EndDate = &closedAt
		}
		// The left join leaves these NULL when the person was deleted; the
		// entry still surfaces with an unresolved reference.
		if personName.Valid {
			entry.PersonName = personName.String
		}
		if personRank.Valid {
			entry.PersonRank = domain.Rank(personRank.String)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	return entries, nil
}

// CountByPerson reports how many ledger entries reference the person.
func (r *AssignmentRepository) CountByPerson(ctx context.Context, personID string) (int, error) {
	stmt, args, err := r.builder.
		Select("COUNT(*)").
		From("roster.role_assignments").
		Where(squirrel.Eq{"person_id": personID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count assignments sql: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}

	return count, nil
}

var _ port.AssignmentRepository = (*AssignmentRepository)(nil)
