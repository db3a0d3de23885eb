package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// Preview calculates without persisting.
	Preview(ctx context.Context, req PayrollRequest) (PreviewResponse, error)

	// Generate recalculates and stores a payslip. A negative net pay is
	// refused with ErrNegativeNetPay.
	Generate(ctx context.Context, req PayrollRequest) (PayslipResponse, error)

	// GetPayslip returns the stored payslip with a freshly aggregated daily breakdown.
	GetPayslip(ctx context.Context, id int64) (PayslipResponse, error)
	ListPayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	DeletePayslip(ctx context.Context, id int64) error
}

type Materializer interface {
	Materialize(ctx context.Context, employeeID string, start, end time.Time, result Result, generatedBy *string) (int64, error)
}
