package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrBulkEmpty          = errors.New("at least one attendance record is required")
)
