package schedule

import (
	"context"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/mock"
)

type mockWeeklyRepo struct{ mock.Mock }

func (m *mockWeeklyRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.WeeklyDutySchedule, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]schedule.WeeklyDutySchedule)
	return rows, args.Error(1)
}

func (m *mockWeeklyRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}

func (m *mockWeeklyRepo) Create(ctx context.Context, row schedule.WeeklyDutySchedule) (schedule.WeeklyDutySchedule, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(schedule.WeeklyDutySchedule), args.Error(1)
}

type mockOverrideRepo struct{ mock.Mock }

func (m *mockOverrideRepo) Upsert(ctx context.Context, o schedule.DutyOverride) (schedule.DutyOverride, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(schedule.DutyOverride), args.Error(1)
}

func (m *mockOverrideRepo) GetByID(ctx context.Context, id string) (schedule.DutyOverride, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schedule.DutyOverride), args.Error(1)
}

func (m *mockOverrideRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.DutyOverride, error) {
	args := m.Called(ctx, employeeID, start, end)
	rows, _ := args.Get(0).([]schedule.DutyOverride)
	return rows, args.Error(1)
}

func (m *mockOverrideRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) Create(ctx context.Context, g schedule.GroupSchedule) (schedule.GroupSchedule, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(schedule.GroupSchedule), args.Error(1)
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id string) (schedule.GroupSchedule, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schedule.GroupSchedule), args.Error(1)
}

func (m *mockGroupRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGroupRepo) AssignEmployees(ctx context.Context, groupScheduleID string, employeeIDs []string) error {
	return m.Called(ctx, groupScheduleID, employeeIDs).Error(0)
}

func (m *mockGroupRepo) UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error {
	return m.Called(ctx, groupScheduleID, employeeID).Error(0)
}

func (m *mockGroupRepo) GetAssignmentsByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.GroupAssignment, error) {
	args := m.Called(ctx, employeeID, start, end)
	rows, _ := args.Get(0).([]schedule.GroupAssignment)
	return rows, args.Error(1)
}

// inlineTx runs fn directly and counts calls.
type inlineTx struct {
	calls int
}

func (t *inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
