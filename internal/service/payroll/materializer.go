package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
)

type materializerImpl struct {
	payslipRepo payroll.PayslipRepository
	timeout     time.Duration
}

// NewMaterializer bounds each insert by timeout; zero disables the bound.
func NewMaterializer(payslipRepo payroll.PayslipRepository, timeout time.Duration) payroll.Materializer {
	return &materializerImpl{
		payslipRepo: payslipRepo,
		timeout:     timeout,
	}
}

// Materialize implements payroll.Materializer. It performs a single insert
// and does not retry.
func (m *materializerImpl) Materialize(ctx context.Context, employeeID string, start, end time.Time, result payroll.Result, generatedBy *string) (int64, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	id, err := m.payslipRepo.Create(ctx, payroll.NewPayslip(employeeID, start, end, result, generatedBy))
	if err != nil {
		return 0, fmt.Errorf("failed to store payslip: %w", err)
	}

	slog.Info("Payslip generated", "payslip_id", id, "employee_id", employeeID, "net_pay", result.NetPay.StringFixed(payroll.MoneyPlaces))
	return id, nil
}
