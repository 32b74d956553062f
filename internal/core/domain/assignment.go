package domain

import "time"

// RoleAssignment is one ledger entry: a person holding a role from
// StartDate until EndDate. A nil EndDate means the entry is open and the
// person currently occupies the role.
//
// The assignment holds a weak reference to the person; PersonName and
// PersonRank are display-time joins and may be empty when the referenced
// person no longer exists.
type RoleAssignment struct {
	ID        string
	PersonID  string
	Role      Role
	StartDate time.Time
	EndDate   *time.Time

	PersonName string
	PersonRank Rank
}

// Open reports whether the entry denotes current occupancy.
func (a RoleAssignment) Open() bool {
	return a.EndDate == nil
}
