package domain

import "time"

// Person is a registered member of the unit roster.
type Person struct {
	ID         string
	Name       string
	WarName    string
	NationalID string
	EmployeeID string
	Rank       Rank
	Quadro     string
	Phone      string
	Active     bool
	CreatedAt  time.Time
}
