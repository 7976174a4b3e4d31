package entity

// Role is the closed set of user roles. Kept as a typed constant with an
// explicit capability table rather than string comparison so a typo in a
// role check fails to compile.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Capability names one action a role may perform.
type Capability int

const (
	CapViewItems Capability = iota
	CapViewDashboard
	CapViewAnalytics
	CapEditItems
	CapDeleteItems
	CapManageUsers
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewItems:     true,
		CapViewDashboard: true,
		CapViewAnalytics: true,
		CapEditItems:     true,
		CapDeleteItems:   true,
		CapManageUsers:   true,
	},
	RoleManager: {
		CapViewItems:     true,
		CapViewDashboard: true,
		CapViewAnalytics: true,
		CapEditItems:     true,
	},
	RoleEmployee: {
		CapViewItems:     true,
		CapViewDashboard: true,
	},
}

// Can reports whether the role holds the capability. Unknown roles hold none.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// User is an account in the mock credential store.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
