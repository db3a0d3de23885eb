package attendance

import (
	"context"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/mock"
)

type mockAttendanceRepo struct{ mock.Mock }

func (m *mockAttendanceRepo) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *mockAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *mockAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	args := m.Called(ctx, employeeID, start, end)
	rows, _ := args.Get(0).([]attendance.Attendance)
	return rows, args.Error(1)
}

type mockResolver struct{ mock.Mock }

func (m *mockResolver) ResolveRange(ctx context.Context, employeeID string, start, end time.Time) (schedule.Timeline, error) {
	args := m.Called(ctx, employeeID, start, end)
	t, _ := args.Get(0).(schedule.Timeline)
	return t, args.Error(1)
}

func (m *mockResolver) Resolve(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveSchedule, bool, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Get(0).(schedule.EffectiveSchedule), args.Bool(1), args.Error(2)
}

type inlineTx struct {
	calls int
}

func (t *inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
