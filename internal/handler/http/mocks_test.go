package http

import (
	"context"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/mock"
)

type mockAttendanceService struct{ mock.Mock }

func (m *mockAttendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *mockAttendanceService) BulkMark(ctx context.Context, req attendance.BulkMarkAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	rows, _ := args.Get(0).([]attendance.AttendanceResponse)
	return rows, args.Error(1)
}

func (m *mockAttendanceService) ListByEmployee(ctx context.Context, q attendance.RangeQuery) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]attendance.AttendanceResponse)
	return rows, args.Error(1)
}

func (m *mockAttendanceService) GetSummary(ctx context.Context, q attendance.RangeQuery) (attendance.SummaryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(attendance.SummaryResponse), args.Error(1)
}

type mockScheduleService struct{ mock.Mock }

func (m *mockScheduleService) SetWeeklySchedule(ctx context.Context, req schedule.SetWeeklyScheduleRequest) (schedule.WeeklyScheduleResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(schedule.WeeklyScheduleResponse), args.Error(1)
}

func (m *mockScheduleService) GetWeeklySchedule(ctx context.Context, employeeID string) (schedule.WeeklyScheduleResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(schedule.WeeklyScheduleResponse), args.Error(1)
}

func (m *mockScheduleService) UpsertDutyOverride(ctx context.Context, req schedule.UpsertDutyOverrideRequest) (schedule.DutyOverrideResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(schedule.DutyOverrideResponse), args.Error(1)
}

func (m *mockScheduleService) ListDutyOverrides(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.DutyOverrideResponse, error) {
	args := m.Called(ctx, employeeID, start, end)
	rows, _ := args.Get(0).([]schedule.DutyOverrideResponse)
	return rows, args.Error(1)
}

func (m *mockScheduleService) DeleteDutyOverride(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScheduleService) CreateGroupSchedule(ctx context.Context, req schedule.CreateGroupScheduleRequest) (schedule.GroupScheduleResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(schedule.GroupScheduleResponse), args.Error(1)
}

func (m *mockScheduleService) GetGroupSchedule(ctx context.Context, id string) (schedule.GroupScheduleResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schedule.GroupScheduleResponse), args.Error(1)
}

func (m *mockScheduleService) DeleteGroupSchedule(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScheduleService) AssignEmployees(ctx context.Context, req schedule.AssignEmployeesRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockScheduleService) UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error {
	return m.Called(ctx, groupScheduleID, employeeID).Error(0)
}

func (m *mockScheduleService) GetEffectiveSchedule(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveScheduleResponse, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Get(0).(schedule.EffectiveScheduleResponse), args.Error(1)
}

type mockPayrollService struct{ mock.Mock }

func (m *mockPayrollService) Preview(ctx context.Context, req payroll.PayrollRequest) (payroll.PreviewResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PreviewResponse), args.Error(1)
}

func (m *mockPayrollService) Generate(ctx context.Context, req payroll.PayrollRequest) (payroll.PayslipResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PayslipResponse), args.Error(1)
}

func (m *mockPayrollService) GetPayslip(ctx context.Context, id int64) (payroll.PayslipResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PayslipResponse), args.Error(1)
}

func (m *mockPayrollService) ListPayslips(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]payroll.PayslipResponse)
	return rows, args.Error(1)
}

func (m *mockPayrollService) DeletePayslip(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
