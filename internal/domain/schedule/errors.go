package schedule

import "errors"

var (
	// Weekly Schedule Errors
	ErrDuplicateWeekday = errors.New("weekday listed more than once in weekly schedule")

	// Duty Override Errors
	ErrDutyOverrideNotFound = errors.New("duty override not found")

	// Group Schedule Errors
	ErrGroupScheduleNotFound   = errors.New("group schedule not found")
	ErrGroupAssignmentNotFound = errors.New("employee is not assigned to this group schedule")

	// Validation Errors
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)
