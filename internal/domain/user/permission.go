package user

type Permission string

const (
	// Attendance
	PermissionAttendanceView Permission = "attendance.view"
	PermissionAttendanceMark Permission = "attendance.mark"

	// Schedules
	PermissionScheduleView   Permission = "schedule.view"
	PermissionScheduleManage Permission = "schedule.manage"

	// Payroll
	PermissionPayrollView     Permission = "payroll.view"
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollDelete   Permission = "payroll.delete"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceView,
		PermissionAttendanceMark,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionPayrollView,
		PermissionPayrollGenerate,
		PermissionPayrollDelete,
	},
	RoleSecretary: {
		PermissionAttendanceView,
		PermissionAttendanceMark,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionPayrollView,
		PermissionPayrollGenerate,
	},
	RoleStaff: {
		PermissionAttendanceView,
		PermissionScheduleView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
