package schedule

import (
	"context"
	"time"
)

type WeeklyScheduleRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) ([]WeeklyDutySchedule, error)
	// DeleteByEmployeeID removes the whole roster; callers reinsert inside the same transaction.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
	Create(ctx context.Context, row WeeklyDutySchedule) (WeeklyDutySchedule, error)
}

type DutyOverrideRepository interface {
	// Upsert inserts or replaces the override keyed on (employee, date).
	Upsert(ctx context.Context, override DutyOverride) (DutyOverride, error)
	GetByID(ctx context.Context, id string) (DutyOverride, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]DutyOverride, error)
	Delete(ctx context.Context, id string) error
}

type GroupScheduleRepository interface {
	Create(ctx context.Context, group GroupSchedule) (GroupSchedule, error)
	GetByID(ctx context.Context, id string) (GroupSchedule, error)
	Delete(ctx context.Context, id string) error
	AssignEmployees(ctx context.Context, groupScheduleID string, employeeIDs []string) error
	UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error
	GetAssignmentsByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]GroupAssignment, error)
}
