package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brgy-portal/staff-backend-go/internal/config"
	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	aggregator      attendance.Aggregator
	materializer    payroll.Materializer
	payslipRepo     payroll.PayslipRepository
	defaults        payroll.RateConfiguration
	allowDuplicates bool
}

func NewPayrollService(
	aggregator attendance.Aggregator,
	materializer payroll.Materializer,
	payslipRepo payroll.PayslipRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		aggregator:   aggregator,
		materializer: materializer,
		payslipRepo:  payslipRepo,
		defaults: payroll.RateConfiguration{
			BasicSalary:            decimal.Zero,
			HourlyRate:             cfg.DefaultHourlyRate,
			OvertimeMultiplier:     cfg.DefaultOvertimeMultiplier,
			LateDeductionPerMinute: cfg.DefaultLateDeductionPerMinute,
			Allowances:             decimal.Zero,
			OtherDeductions:        decimal.Zero,
		},
		allowDuplicates: cfg.AllowDuplicatePayslips,
	}
}

// calculate runs aggregation and calculation for a validated request.
func (s *PayrollServiceImpl) calculate(ctx context.Context, req *payroll.PayrollRequest) (attendance.Summary, payroll.Result, error) {
	start, end := req.Period()
	summary, err := s.aggregator.Aggregate(ctx, req.EmployeeID, start, end)
	if err != nil {
		return attendance.Summary{}, payroll.Result{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}
	return summary, Calculate(summary, req.Rates(s.defaults)), nil
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PayrollRequest) (payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewResponse{}, err
	}

	summary, result, err := s.calculate(ctx, &req)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	start, end := req.Period()
	return payroll.NewPreviewResponse(req.EmployeeID, start, end, result, summary.Days), nil
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.PayrollRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	start, end := req.Period()
	if !s.allowDuplicates {
		exists, err := s.payslipRepo.ExistsForPeriod(ctx, req.EmployeeID, start, end)
		if err != nil {
			return payroll.PayslipResponse{}, fmt.Errorf("failed to check existing payslips: %w", err)
		}
		if exists {
			return payroll.PayslipResponse{}, payroll.ErrPayslipAlreadyExists
		}
	}

	_, result, err := s.calculate(ctx, &req)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !result.Materializable() {
		slog.Warn("Payslip generation refused", "employee_id", req.EmployeeID, "net_pay", result.NetPay.StringFixed(payroll.MoneyPlaces))
		return payroll.PayslipResponse{}, payroll.ErrNegativeNetPay
	}

	id, err := s.materializer.Materialize(ctx, req.EmployeeID, start, end, result, req.GeneratedBy)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	stored, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to read generated payslip: %w", err)
	}
	return payroll.NewPayslipResponse(stored), nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id int64) (payroll.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	summary, err := s.aggregator.Aggregate(ctx, p.EmployeeID, p.PeriodStart, p.PeriodEnd)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	resp := payroll.NewPayslipResponse(p)
	resp.Days = attendance.NewDayDetailResponses(summary.Days)
	return resp, nil
}

// ListPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "must be a valid UUID"}}
	}

	payslips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	resp := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		resp = append(resp, payroll.NewPayslipResponse(p))
	}
	return resp, nil
}

// DeletePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayslip(ctx context.Context, id int64) error {
	if err := s.payslipRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Payslip deleted", "payslip_id", id)
	return nil
}
