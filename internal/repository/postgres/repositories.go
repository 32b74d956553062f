package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories groups concrete PostgreSQL repository implementations.
type Repositories struct {
	People      *PersonRepository
	Assignments *AssignmentRepository
	Leaves      *LeaveRepository
}

// NewRepositories wires all repositories backed by the provided pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		People:      NewPersonRepository(pool),
		Assignments: NewAssignmentRepository(pool),
		Leaves:      NewLeaveRepository(pool),
	}
}
