package schedule

import (
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
)

// WeeklyDutySchedule is the recurring baseline for one weekday.
type WeeklyDutySchedule struct {
	ID         string
	EmployeeID string
	DayOfWeek  time.Weekday // stored as the weekday name, e.g. "Monday"
	TimeIn     clock.TimeOfDay
	TimeOut    clock.TimeOfDay
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DutyOverride is a special duty schedule for one employee on one date.
type DutyOverride struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     *clock.TimeOfDay
	TimeOut    *clock.TimeOfDay
	Note       *string
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GroupSchedule is a named special schedule for a single date, shared by
// every assigned employee.
type GroupSchedule struct {
	ID           string
	Name         string
	Date         time.Time
	IsWorkingDay bool
	TimeIn       *clock.TimeOfDay
	TimeOut      *clock.TimeOfDay
	Description  *string
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	EmployeeIDs []string
}

// GroupAssignment is a group schedule as seen by one assigned employee.
type GroupAssignment struct {
	GroupScheduleID string
	EmployeeID      string
	Name            string
	Date            time.Time
	IsWorkingDay    bool
	TimeIn          *clock.TimeOfDay
	TimeOut         *clock.TimeOfDay
}

// Source names the tier an effective schedule came from.
type Source string

const (
	SourceOverride Source = "override"
	SourceGroup    Source = "group"
	SourceWeekly   Source = "weekly"
	SourceNonDuty  Source = "non_duty"
)

// EffectiveSchedule is the expected window for one date. Either bound may be
// nil when the winning source only defined one of them.
type EffectiveSchedule struct {
	Date    time.Time
	TimeIn  *clock.TimeOfDay
	TimeOut *clock.TimeOfDay
	Source  Source
}

// Complete reports whether both bounds are known.
func (e EffectiveSchedule) Complete() bool {
	return e.TimeIn != nil && e.TimeOut != nil
}

// Book holds every schedule row that can affect one employee over a date range.
type Book struct {
	EmployeeID string
	Weekly     map[time.Weekday]WeeklyDutySchedule
	Overrides  map[string]DutyOverride    // keyed by clock.DateKey
	Groups     map[string]GroupAssignment // keyed by clock.DateKey
}

func NewBook(employeeID string, weekly []WeeklyDutySchedule, overrides []DutyOverride, groups []GroupAssignment) Book {
	b := Book{
		EmployeeID: employeeID,
		Weekly:     make(map[time.Weekday]WeeklyDutySchedule),
		Overrides:  make(map[string]DutyOverride),
		Groups:     make(map[string]GroupAssignment),
	}
	for _, w := range weekly {
		if w.IsActive {
			b.Weekly[w.DayOfWeek] = w
		}
	}
	for _, o := range overrides {
		b.Overrides[clock.DateKey(o.Date)] = o
	}
	for _, g := range groups {
		b.Groups[clock.DateKey(g.Date)] = g
	}
	return b
}

// Timeline maps clock.DateKey to the effective schedule of that date. Dates
// without a schedule are absent.
type Timeline map[string]EffectiveSchedule

func (t Timeline) On(date time.Time) (EffectiveSchedule, bool) {
	s, ok := t[clock.DateKey(date)]
	return s, ok
}

// ParseWeekday accepts English weekday names as stored in the weekly table.
func ParseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}
