package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Weekly roster
	SetWeeklySchedule(ctx context.Context, req SetWeeklyScheduleRequest) (WeeklyScheduleResponse, error)
	GetWeeklySchedule(ctx context.Context, employeeID string) (WeeklyScheduleResponse, error)

	// Duty overrides
	UpsertDutyOverride(ctx context.Context, req UpsertDutyOverrideRequest) (DutyOverrideResponse, error)
	ListDutyOverrides(ctx context.Context, employeeID string, start, end time.Time) ([]DutyOverrideResponse, error)
	DeleteDutyOverride(ctx context.Context, id string) error

	// Group schedules
	CreateGroupSchedule(ctx context.Context, req CreateGroupScheduleRequest) (GroupScheduleResponse, error)
	GetGroupSchedule(ctx context.Context, id string) (GroupScheduleResponse, error)
	DeleteGroupSchedule(ctx context.Context, id string) error
	AssignEmployees(ctx context.Context, req AssignEmployeesRequest) error
	UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error

	// Resolution
	GetEffectiveSchedule(ctx context.Context, employeeID string, date time.Time) (EffectiveScheduleResponse, error)
}

// Resolver determines the effective duty schedule of an employee.
type Resolver interface {
	// ResolveRange resolves every date from start to end inclusive. Dates
	// with no duty are absent from the returned timeline.
	ResolveRange(ctx context.Context, employeeID string, start, end time.Time) (Timeline, error)
	Resolve(ctx context.Context, employeeID string, date time.Time) (EffectiveSchedule, bool, error)
}
