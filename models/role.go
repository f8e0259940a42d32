package models

// Role determines which dashboard a session sees and which actions it may take.
type Role string

const (
	RoleStore      Role = "store"
	RoleCourier    Role = "courier"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStore, RoleCourier, RoleSupervisor:
		return true
	}
	return false
}
