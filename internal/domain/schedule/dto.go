package schedule

import (
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
)

// ========== WEEKLY SCHEDULE DTOs ==========

type WeeklyDayRequest struct {
	Day     string `json:"day"` // "Monday" ... "Sunday"
	TimeIn  string `json:"time_in"`
	TimeOut string `json:"time_out"`
}

type SetWeeklyScheduleRequest struct {
	EmployeeID string             `json:"-"`
	Days       []WeeklyDayRequest `json:"days"`
}

func (r *SetWeeklyScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "must be a valid UUID")
	}

	seen := make(map[string]bool)
	for i, d := range r.Days {
		field := fmt.Sprintf("days[%d]", i)
		if _, ok := ParseWeekday(d.Day); !ok {
			errs.Add(field+".day", "must be a weekday name such as 'Monday'")
		} else if seen[d.Day] {
			errs.Add(field+".day", ErrDuplicateWeekday.Error())
		}
		seen[d.Day] = true
		if _, err := clock.Parse(d.TimeIn); err != nil {
			errs.Add(field+".time_in", "must be HH:MM or HH:MM:SS")
		}
		if _, err := clock.Parse(d.TimeOut); err != nil {
			errs.Add(field+".time_out", "must be HH:MM or HH:MM:SS")
		}
	}

	return errs.Err()
}

type WeeklyDayResponse struct {
	ID       string          `json:"id"`
	Day      string          `json:"day"`
	TimeIn   clock.TimeOfDay `json:"time_in"`
	TimeOut  clock.TimeOfDay `json:"time_out"`
	IsActive bool            `json:"is_active"`
}

type WeeklyScheduleResponse struct {
	EmployeeID string              `json:"employee_id"`
	Days       []WeeklyDayResponse `json:"days"`
}

// ========== DUTY OVERRIDE DTOs ==========

type UpsertDutyOverrideRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	TimeIn     string  `json:"time_in"`
	TimeOut    string  `json:"time_out"`
	Note       *string `json:"note,omitempty"`
	CreatedBy  *string `json:"-"`
}

func (r *UpsertDutyOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "must be a valid UUID")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", ErrInvalidDateFormat.Error())
	}
	if _, err := clock.Parse(r.TimeIn); err != nil {
		errs.Add("time_in", "must be HH:MM or HH:MM:SS")
	}
	if _, err := clock.Parse(r.TimeOut); err != nil {
		errs.Add("time_out", "must be HH:MM or HH:MM:SS")
	}

	return errs.Err()
}

type DutyOverrideResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	TimeIn     *clock.TimeOfDay `json:"time_in"`
	TimeOut    *clock.TimeOfDay `json:"time_out"`
	Note       *string          `json:"note,omitempty"`
}

// ========== GROUP SCHEDULE DTOs ==========

type CreateGroupScheduleRequest struct {
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	IsWorkingDay *bool    `json:"is_working_day"`
	TimeIn       *string  `json:"time_in,omitempty"`
	TimeOut      *string  `json:"time_out,omitempty"`
	Description  *string  `json:"description,omitempty"`
	EmployeeIDs  []string `json:"employee_ids"`
	CreatedBy    *string  `json:"-"`
}

func (r *CreateGroupScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", ErrInvalidDateFormat.Error())
	}
	if r.IsWorkingDay == nil {
		errs.Add("is_working_day", "is required")
	}
	if r.TimeIn != nil {
		if _, err := clock.Parse(*r.TimeIn); err != nil {
			errs.Add("time_in", "must be HH:MM or HH:MM:SS")
		}
	}
	if r.TimeOut != nil {
		if _, err := clock.Parse(*r.TimeOut); err != nil {
			errs.Add("time_out", "must be HH:MM or HH:MM:SS")
		}
	}
	for i, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs.Add(fmt.Sprintf("employee_ids[%d]", i), "must be a valid UUID")
		}
	}

	return errs.Err()
}

type AssignEmployeesRequest struct {
	GroupScheduleID string   `json:"-"`
	EmployeeIDs     []string `json:"employee_ids"`
}

func (r *AssignEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs.Add("employee_ids", "at least one employee is required")
	}
	for i, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs.Add(fmt.Sprintf("employee_ids[%d]", i), "must be a valid UUID")
		}
	}

	return errs.Err()
}

type GroupScheduleResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Date         string           `json:"date"`
	IsWorkingDay bool             `json:"is_working_day"`
	TimeIn       *clock.TimeOfDay `json:"time_in"`
	TimeOut      *clock.TimeOfDay `json:"time_out"`
	Description  *string          `json:"description,omitempty"`
	EmployeeIDs  []string         `json:"employee_ids"`
}

// ========== EFFECTIVE SCHEDULE DTOs ==========

type EffectiveScheduleResponse struct {
	EmployeeID  string           `json:"employee_id"`
	Date        string           `json:"date"`
	HasSchedule bool             `json:"has_schedule"`
	Source      *Source          `json:"source,omitempty"`
	TimeIn      *clock.TimeOfDay `json:"time_in"`
	TimeOut     *clock.TimeOfDay `json:"time_out"`
}

// NewEffectiveScheduleResponse renders a resolver result; ok=false means no duty.
func NewEffectiveScheduleResponse(employeeID string, date time.Time, eff EffectiveSchedule, ok bool) EffectiveScheduleResponse {
	resp := EffectiveScheduleResponse{
		EmployeeID: employeeID,
		Date:       clock.DateKey(date),
	}
	if !ok {
		return resp
	}
	src := eff.Source
	resp.HasSchedule = true
	resp.Source = &src
	resp.TimeIn = eff.TimeIn
	resp.TimeOut = eff.TimeOut
	return resp
}
