package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

const payslipColumns = `
	p.id, p.employee_id, p.period_start, p.period_end,
	p.basic_salary, p.hourly_rate, p.overtime_multiplier, p.overtime_hours, p.overtime_pay,
	p.late_minutes, p.late_deduction_per_minute, p.late_deductions,
	p.allowances, p.other_deductions, p.total_deductions, p.gross_pay, p.net_pay,
	p.present_days, p.late_days, p.absent_days, p.on_leave_days, p.worked_days,
	p.generated_by, p.generated_at, p.status, e.full_name
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.BasicSalary, &p.HourlyRate, &p.OvertimeMultiplier, &p.OvertimeHours, &p.OvertimePay,
		&p.LateMinutes, &p.LateDeductionPerMinute, &p.LateDeductions,
		&p.Allowances, &p.OtherDeductions, &p.TotalDeductions, &p.GrossPay, &p.NetPay,
		&p.PresentDays, &p.LateDays, &p.AbsentDays, &p.OnLeaveDays, &p.WorkedDays,
		&p.GeneratedBy, &p.GeneratedAt, &p.Status, &p.EmployeeName,
	)
	return p, err
}

// Create implements payroll.PayslipRepository.
func (r *payslipRepository) Create(ctx context.Context, p payroll.Payslip) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			employee_id, period_start, period_end,
			basic_salary, hourly_rate, overtime_multiplier, overtime_hours, overtime_pay,
			late_minutes, late_deduction_per_minute, late_deductions,
			allowances, other_deductions, total_deductions, gross_pay, net_pay,
			present_days, late_days, absent_days, on_leave_days, worked_days,
			generated_by, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		) RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.PeriodStart, p.PeriodEnd,
		p.BasicSalary, p.HourlyRate, p.OvertimeMultiplier, p.OvertimeHours, p.OvertimePay,
		p.LateMinutes, p.LateDeductionPerMinute, p.LateDeductions,
		p.Allowances, p.OtherDeductions, p.TotalDeductions, p.GrossPay, p.NetPay,
		p.PresentDays, p.LateDays, p.AbsentDays, p.OnLeaveDays, p.WorkedDays,
		p.GeneratedBy, string(p.Status),
	).Scan(&id)
	if err != nil {
		if refErr := referenceError(err); refErr != nil {
			return 0, refErr
		}
		return 0, fmt.Errorf("failed to create payslip: %w", err)
	}

	return id, nil
}

// GetByID implements payroll.PayslipRepository.
func (r *payslipRepository) GetByID(ctx context.Context, id int64) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + `
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

// ListByEmployee implements payroll.PayslipRepository. Newest first.
func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + `
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.period_start DESC, p.id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}

	return payslips, nil
}

// ExistsForPeriod implements payroll.PayslipRepository.
func (r *payslipRepository) ExistsForPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_id = $1 AND period_start = $2 AND period_end = $3)`,
		employeeID, start, end,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payslip period: %w", err)
	}
	return exists, nil
}

// Delete implements payroll.PayslipRepository.
func (r *payslipRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}
