package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/auth"
	"github.com/brgy-portal/staff-backend-go/internal/domain/employee"
	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/domain/user"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrEmployeeIDRequired),
		errors.Is(err, attendance.ErrBulkEmpty):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrDutyOverrideNotFound):
		NotFound(w, "Duty override not found")
	case errors.Is(err, schedule.ErrGroupScheduleNotFound):
		NotFound(w, "Group schedule not found")
	case errors.Is(err, schedule.ErrGroupAssignmentNotFound):
		NotFound(w, "Employee is not assigned to this group schedule")
	case errors.Is(err, schedule.ErrDuplicateWeekday),
		errors.Is(err, schedule.ErrEmployeeIDRequired),
		errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this employee and period")
	case errors.Is(err, payroll.ErrNegativeNetPay):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
