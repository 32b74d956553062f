package domain

import "fmt"

// Role is one of the fixed unit functions tracked by the ledger.
type Role string

const (
	RoleCoordinator       Role = "coordinator"
	RoleDeputyCoordinator Role = "deputy_coordinator"
	RoleAdminOfficer      Role = "admin_officer"
	RoleAdminTrooper      Role = "admin_trooper"
)

var roleOrder = []Role{
	RoleCoordinator,
	RoleDeputyCoordinator,
	RoleAdminOfficer,
	RoleAdminTrooper,
}

// Roles returns all ledger roles in display order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// SingleSeat reports whether at most one open assignment may exist for the
// role. Coordinator and deputy-coordinator are one-seat functions; the
// administrative roles allow multiple concurrent holders.
func (r Role) SingleSeat() bool {
	return r == RoleCoordinator || r == RoleDeputyCoordinator
}

// ParseRole rejects values outside the fixed role set.
func ParseRole(value string) (Role, error) {
	role := Role(value)
	for _, known := range roleOrder {
		if role == known {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", value)
}
