package attendance

import (
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Note       *string `json:"note,omitempty"`
	ActorID    *string `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	r.validateInto(&errs, "")
	return errs.Err()
}

func (r *MarkAttendanceRequest) validateInto(errs *validator.ValidationErrors, prefix string) {
	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add(prefix+"employee_id", "must be a valid UUID")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add(prefix+"date", "must be a date in YYYY-MM-DD format")
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs.Add(prefix+"status", fmt.Sprintf("must be one of %v", Statuses))
	}
	if r.ClockIn != nil {
		if _, err := clock.Parse(*r.ClockIn); err != nil {
			errs.Add(prefix+"clock_in", "must be HH:MM or HH:MM:SS")
		}
	}
	if r.ClockOut != nil {
		if _, err := clock.Parse(*r.ClockOut); err != nil {
			errs.Add(prefix+"clock_out", "must be HH:MM or HH:MM:SS")
		}
	}
}

// ToEntity assumes Validate has passed.
func (r *MarkAttendanceRequest) ToEntity() Attendance {
	date, _ := clock.ParseDate(r.Date)
	return Attendance{
		EmployeeID: r.EmployeeID,
		Date:       date,
		Status:     Status(r.Status),
		ClockIn:    parseClock(r.ClockIn),
		ClockOut:   parseClock(r.ClockOut),
		Note:       r.Note,
		CreatedBy:  r.ActorID,
		UpdatedBy:  r.ActorID,
	}
}

type BulkMarkAttendanceRequest struct {
	Records []MarkAttendanceRequest `json:"records"`
	ActorID *string                 `json:"-"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Records) == 0 {
		errs.Add("records", ErrBulkEmpty.Error())
	}
	for i := range r.Records {
		r.Records[i].validateInto(&errs, fmt.Sprintf("records[%d].", i))
	}
	return errs.Err()
}

// RangeQuery selects one employee's records over an inclusive date range.
type RangeQuery struct {
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string

	start time.Time
	end   time.Time
}

func (q *RangeQuery) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(q.EmployeeID) {
		errs.Add("employee_id", "must be a valid UUID")
	}
	q.start, q.end = validator.CheckPeriod(&errs, q.PeriodStart, q.PeriodEnd)
	return errs.Err()
}

// Range returns the parsed dates; valid only after Validate succeeds.
func (q *RangeQuery) Range() (time.Time, time.Time) {
	return q.start, q.end
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Date         string           `json:"date"`
	Status       Status           `json:"status"`
	ClockIn      *clock.TimeOfDay `json:"clock_in"`
	ClockOut     *clock.TimeOfDay `json:"clock_out"`
	TotalHours   float64          `json:"total_hours"`
	Note         *string          `json:"note,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         clock.DateKey(a.Date),
		Status:       a.Status,
		ClockIn:      a.ClockIn,
		ClockOut:     a.ClockOut,
		TotalHours:   RoundHours(a.TotalHoursDisplay()),
		Note:         a.Note,
	}
}

type DayDetailResponse struct {
	Date          string           `json:"date"`
	Status        Status           `json:"status"`
	ClockIn       *clock.TimeOfDay `json:"clock_in"`
	ClockOut      *clock.TimeOfDay `json:"clock_out"`
	ScheduledIn   *clock.TimeOfDay `json:"scheduled_in"`
	ScheduledOut  *clock.TimeOfDay `json:"scheduled_out"`
	LateMinutes   int              `json:"late_minutes"`
	WorkedHours   float64          `json:"worked_hours"`
	OvertimeHours float64          `json:"overtime_hours"`
}

type SummaryResponse struct {
	EmployeeID       string              `json:"employee_id"`
	PeriodStart      string              `json:"period_start"`
	PeriodEnd        string              `json:"period_end"`
	PresentDays      int                 `json:"present_days"`
	LateDays         int                 `json:"late_days"`
	AbsentDays       int                 `json:"absent_days"`
	OnLeaveDays      int                 `json:"on_leave_days"`
	WorkedDays       int                 `json:"worked_days"`
	TotalLateMinutes int                 `json:"total_late_minutes"`
	OvertimeHours    float64             `json:"overtime_hours"`
	Days             []DayDetailResponse `json:"days"`
}

func NewSummaryResponse(employeeID string, start, end time.Time, s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:       employeeID,
		PeriodStart:      clock.DateKey(start),
		PeriodEnd:        clock.DateKey(end),
		PresentDays:      s.PresentDays,
		LateDays:         s.LateDays,
		AbsentDays:       s.AbsentDays,
		OnLeaveDays:      s.OnLeaveDays,
		WorkedDays:       s.WorkedDays,
		TotalLateMinutes: s.TotalLateMinutes,
		OvertimeHours:    s.OvertimeHours(),
		Days:             NewDayDetailResponses(s.Days),
	}
}

func NewDayDetailResponses(days []DayDetail) []DayDetailResponse {
	resp := make([]DayDetailResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, DayDetailResponse{
			Date:          clock.DateKey(d.Date),
			Status:        d.Status,
			ClockIn:       d.ClockIn,
			ClockOut:      d.ClockOut,
			ScheduledIn:   d.ScheduledIn,
			ScheduledOut:  d.ScheduledOut,
			LateMinutes:   d.LateMinutes,
			WorkedHours:   RoundHours(d.WorkedHours),
			OvertimeHours: RoundHours(d.OvertimeHours),
		})
	}
	return resp
}

func parseClock(s *string) *clock.TimeOfDay {
	if s == nil {
		return nil
	}
	t, err := clock.Parse(*s)
	if err != nil {
		return nil
	}
	return &t
}
