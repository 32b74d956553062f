package usecase

import "errors"

var (
	// ErrValidation indicates the input failed a business rule; the wrapped
	// message carries the detail.
	ErrValidation = errors.New("validation failed")
	// ErrPersonNotFound is returned when an operation references an unknown person.
	ErrPersonNotFound = errors.New("person not found")
	// ErrPersonInactive is returned when assigning a role or leave to someone
	// off the active roster.
	ErrPersonInactive = errors.New("person is not on the active roster")
	// ErrPersonReferenced blocks deletion of a person the ledger or leave
	// register still points at.
	ErrPersonReferenced = errors.New("person is referenced by history records")
)
