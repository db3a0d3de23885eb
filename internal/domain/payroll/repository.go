package payroll

import (
	"context"
	"time"
)

// PayslipRepository stores generated payslips. Rows are never updated.
type PayslipRepository interface {
	// Create inserts one payslip and returns its numeric id.
	Create(ctx context.Context, payslip Payslip) (int64, error)
	GetByID(ctx context.Context, id int64) (Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Delete(ctx context.Context, id int64) error
}
