package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/config"
	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const employeeID = "123e4567-e89b-12d3-a456-426614174000"

var (
	marchStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd   = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
)

type mockAggregator struct{ mock.Mock }

func (m *mockAggregator) Aggregate(ctx context.Context, employeeID string, start, end time.Time) (attendance.Summary, error) {
	args := m.Called(ctx, employeeID, start, end)
	return args.Get(0).(attendance.Summary), args.Error(1)
}

type mockPayslipRepo struct{ mock.Mock }

func (m *mockPayslipRepo) Create(ctx context.Context, p payroll.Payslip) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPayslipRepo) GetByID(ctx context.Context, id int64) (payroll.Payslip, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.Payslip), args.Error(1)
}

func (m *mockPayslipRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]payroll.Payslip)
	return rows, args.Error(1)
}

func (m *mockPayslipRepo) ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *mockPayslipRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func testPayrollConfig() config.PayrollConfig {
	return config.PayrollConfig{
		DefaultHourlyRate:             dec("75"),
		DefaultOvertimeMultiplier:     dec("1.25"),
		DefaultLateDeductionPerMinute: dec("2"),
		StoreTimeout:                  time.Second,
		AllowDuplicatePayslips:        true,
	}
}

func newTestService(cfg config.PayrollConfig) (payroll.PayrollService, *mockAggregator, *mockPayslipRepo) {
	agg := new(mockAggregator)
	repo := new(mockPayslipRepo)
	svc := NewPayrollService(agg, NewMaterializer(repo, cfg.StoreTimeout), repo, cfg)
	return svc, agg, repo
}

func marchRequest(basic string) payroll.PayrollRequest {
	month, year := 3, 2025
	b := dec(basic)
	return payroll.PayrollRequest{
		EmployeeID:  employeeID,
		PeriodMonth: &month,
		PeriodYear:  &year,
		BasicSalary: &b,
	}
}

func lateSummary() attendance.Summary {
	return attendance.Summary{
		PresentDays:        1,
		LateDays:           1,
		WorkedDays:         1,
		TotalLateMinutes:   5,
		TotalOvertimeHours: 1.0,
		Days:               []attendance.DayDetail{{Date: marchStart.AddDate(0, 0, 2), Status: attendance.StatusLate, LateMinutes: 5}},
	}
}

func TestPreview_UsesConfiguredDefaults(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	agg.On("Aggregate", mock.Anything, employeeID, marchStart, marchEnd).Return(lateSummary(), nil)

	resp, err := svc.Preview(context.Background(), marchRequest("0"))

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.PeriodStart)
	assert.Equal(t, "2025-03-31", resp.PeriodEnd)
	assert.Equal(t, "93.75", resp.OvertimePay.StringFixed(2))
	assert.Equal(t, "10.00", resp.LateDeductions.StringFixed(2))
	assert.True(t, resp.CanGenerate)
	assert.Len(t, resp.Days, 1)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPreview_OperatorRatesOverrideDefaults(t *testing.T) {
	svc, agg, _ := newTestService(testPayrollConfig())
	agg.On("Aggregate", mock.Anything, employeeID, marchStart, marchEnd).Return(lateSummary(), nil)

	req := marchRequest("0")
	hourly, late := dec("100"), decimal.Zero
	req.HourlyRate = &hourly
	req.LateDeductionPerMinute = &late

	resp, err := svc.Preview(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "125.00", resp.OvertimePay.StringFixed(2))
	assert.Equal(t, "0.00", resp.LateDeductions.StringFixed(2))
	assert.Equal(t, "1.25", resp.Rates.OvertimeMultiplier.String())
}

func TestPreview_ValidationErrors(t *testing.T) {
	svc, _, _ := newTestService(testPayrollConfig())
	month := 13
	neg := dec("-1")
	multiplier := dec("0.5")

	_, err := svc.Preview(context.Background(), payroll.PayrollRequest{
		EmployeeID:         "bad",
		PeriodMonth:        &month,
		BasicSalary:        &neg,
		OvertimeMultiplier: &multiplier,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, f := range []string{"employee_id", "period_month", "period_year", "basic_salary", "overtime_multiplier"} {
		assert.Contains(t, fields, f)
	}
}

func TestGenerate_MaterializesAndReadsBack(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	ctx := context.Background()
	actor := "secretary-1"

	agg.On("Aggregate", ctx, employeeID, marchStart, marchEnd).Return(lateSummary(), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p payroll.Payslip) bool {
		return p.EmployeeID == employeeID &&
			p.PeriodStart.Equal(marchStart) &&
			p.NetPay.StringFixed(2) == "5083.75" &&
			p.HourlyRate.StringFixed(2) == "75.00" &&
			*p.GeneratedBy == actor &&
			p.Status == payroll.PayslipStatusGenerated
	})).Return(int64(42), nil)
	repo.On("GetByID", ctx, int64(42)).Return(payroll.Payslip{
		ID:          42,
		EmployeeID:  employeeID,
		PeriodStart: marchStart,
		PeriodEnd:   marchEnd,
		NetPay:      dec("5083.75"),
		Status:      payroll.PayslipStatusGenerated,
	}, nil)

	req := marchRequest("5000")
	req.GeneratedBy = &actor
	resp, err := svc.Generate(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "000042", resp.Number)
	assert.Empty(t, resp.Days)
	repo.AssertNotCalled(t, "ExistsForPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGenerate_RefusesNegativeNetPay(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	agg.On("Aggregate", mock.Anything, employeeID, marchStart, marchEnd).Return(attendance.Summary{}, nil)

	req := marchRequest("5000")
	other := dec("6000")
	req.OtherDeductions = &other

	_, err := svc.Generate(context.Background(), req)

	assert.ErrorIs(t, err, payroll.ErrNegativeNetPay)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_DuplicatePolicy(t *testing.T) {
	cfg := testPayrollConfig()
	cfg.AllowDuplicatePayslips = false
	svc, agg, repo := newTestService(cfg)

	repo.On("ExistsForPeriod", mock.Anything, employeeID, marchStart, marchEnd).Return(true, nil)

	_, err := svc.Generate(context.Background(), marchRequest("5000"))

	assert.ErrorIs(t, err, payroll.ErrPayslipAlreadyExists)
	agg.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_StoreFailureSurfaces(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	boom := errors.New("connection refused")

	agg.On("Aggregate", mock.Anything, employeeID, marchStart, marchEnd).Return(lateSummary(), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), boom).Once()

	_, err := svc.Generate(context.Background(), marchRequest("5000"))

	assert.ErrorIs(t, err, boom)
	repo.AssertNumberOfCalls(t, "Create", 1)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetPayslip_ReaggregatesStoredPeriod(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	stored := payroll.Payslip{
		ID:          7,
		EmployeeID:  employeeID,
		PeriodStart: marchStart,
		PeriodEnd:   marchEnd,
		NetPay:      dec("83.75"),
		Status:      payroll.PayslipStatusGenerated,
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	agg.On("Aggregate", mock.Anything, employeeID, marchStart, marchEnd).Return(lateSummary(), nil)

	resp, err := svc.GetPayslip(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "000007", resp.Number)
	assert.Equal(t, "83.75", resp.NetPay.StringFixed(2))
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 5, resp.Days[0].LateMinutes)
}

func TestGetPayslip_NotFound(t *testing.T) {
	svc, agg, repo := newTestService(testPayrollConfig())
	repo.On("GetByID", mock.Anything, int64(99)).Return(payroll.Payslip{}, payroll.ErrPayslipNotFound)

	_, err := svc.GetPayslip(context.Background(), 99)

	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
	agg.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListAndDeletePayslips(t *testing.T) {
	svc, _, repo := newTestService(testPayrollConfig())
	repo.On("ListByEmployee", mock.Anything, employeeID).Return([]payroll.Payslip{{ID: 1}, {ID: 2}}, nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(nil)

	list, err := svc.ListPayslips(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "000002", list[1].Number)

	require.NoError(t, svc.DeletePayslip(context.Background(), 2))
	repo.AssertExpectations(t)
}
