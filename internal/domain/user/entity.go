package user

type Role string

const (
	RoleAdmin     Role = "admin"     // Barangay administrator - full access
	RoleSecretary Role = "secretary" // Keeps attendance and runs payroll
	RoleStaff     Role = "staff"     // Read-only access to schedules and attendance
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSecretary, RoleStaff:
		return true
	}
	return false
}

// Principal is the caller identity carried by an access token.
type Principal struct {
	UserID string
	Role   Role
}
