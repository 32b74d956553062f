package domain

import "time"

// PersonRegisteredEvent is emitted when a new member joins the roster.
type PersonRegisteredEvent struct {
	EventID      string
	PersonID     string
	Name         string
	WarName      string
	Rank         Rank
	RegisteredAt time.Time
}

// RoleAssignedEvent is emitted for every ledger assignment. For single-seat
// roles ClosedEntryIDs carries the entries terminated by the succession.
type RoleAssignedEvent struct {
	EventID        string
	AssignmentID   string
	PersonID       string
	Role           Role
	StartDate      time.Time
	SingleSeat     bool
	ClosedEntryIDs []string
}

// LeaveRecordedEvent is emitted when a leave period is registered.
type LeaveRecordedEvent struct {
	EventID   string
	LeaveID   string
	PersonID  string
	Type      LeaveType
	StartDate time.Time
	EndDate   time.Time
}
