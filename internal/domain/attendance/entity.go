package attendance

import (
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
	StatusHalfDay Status = "Half Day"
)

var Statuses = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusOnLeave),
	string(StatusHalfDay),
}

// Attendance is the daily record of one employee. There is at most one per
// (employee, date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	ClockIn    *clock.TimeOfDay
	ClockOut   *clock.TimeOfDay
	Note       *string
	CreatedBy  *string
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Worked reports whether the status counts toward worked time.
func (a Attendance) Worked() bool {
	return a.Status == StatusPresent || a.Status == StatusLate
}

// PayrollEligible reports a worked record with both clocks set and non-zero.
func (a Attendance) PayrollEligible() bool {
	return a.Worked() && clock.Present(a.ClockIn) && clock.Present(a.ClockOut)
}

// TotalHoursDisplay is the clocked duration shown on attendance screens. A
// clock-out earlier than the clock-in is treated as the next day. The payroll
// path never uses it.
func (a Attendance) TotalHoursDisplay() float64 {
	if !clock.Present(a.ClockIn) || !clock.Present(a.ClockOut) {
		return 0
	}
	d := time.Duration(*a.ClockOut) - time.Duration(*a.ClockIn)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}
