package postgres

import (
	"context"
	"database/sql"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
)

// LeaveRepository implements the append-only leave register on PostgreSQL.
type LeaveRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewLeaveRepository wires a PostgreSQL-backed leave repository.
func NewLeaveRepository(exec pgExecutor) *LeaveRepository {
	return &LeaveRepository{
		exec:    exec,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert appends a leave record. Records are never updated afterwards.
func (r *LeaveRepository) Insert(ctx context.Context, record domain.LeaveRecord) error {
	stmt, args, err := r.builder.Insert("roster.leave_records").
		Columns("id", "person_id", "type", "start_date", "end_date", "note").
		Values(record.ID, record.PersonID, string(record.Type), record.StartDate, record.EndDate, record.Note).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert leave sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}

	return nil
}

// List returns the register ordered by start date descending with the person
// name joined for display.
func (r *LeaveRepository) List(ctx context.Context) ([]domain.LeaveRecord, error) {
	stmt, args, err := r.builder.
		Select("l.id", "l.person_id", "l.type", "l.start_date", "l.end_date", "l.note", "p.name").
		From("roster.leave_records l").
		LeftJoin("roster.people p ON p.id = l.person_id").
		OrderBy("l.start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list leaves sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaves: %w", err)
	}
	defer rows.Close()

	records := make([]domain.LeaveRecord, 0)
	for rows.Next() {
		var (
			record     domain.LeaveRecord
			leaveType  string
			personName sql.NullString
		)
		if err := rows.Scan(
			&record.ID,
			&record.PersonID,
			&leaveType,
			&record.StartDate,
			&record.EndDate,
			&record.Note,
			&personName,
		); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}

		record.Type = domain.LeaveType(leaveType)
		if personName.Valid {
			record.PersonName = personName.String
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaves: %w", err)
	}

	return records, nil
}

// CountByPerson reports how many leave records reference the person.
func (r *LeaveRepository) CountByPerson(ctx context.Context, personID string) (int, error) {
	stmt, args, err := r.builder.
		Select("COUNT(*)").
		From("roster.leave_records").
		Where(squirrel.Eq{"person_id": personID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count leaves sql: %w", err)
	}

	var count int
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leaves: %w", err)
	}

	return count, nil
}

var _ port.LeaveRepository = (*LeaveRepository)(nil)
