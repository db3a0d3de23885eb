package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RateConfiguration is supplied by the operator at calculation time.
type RateConfiguration struct {
	BasicSalary            decimal.Decimal
	HourlyRate             decimal.Decimal
	OvertimeMultiplier     decimal.Decimal
	LateDeductionPerMinute decimal.Decimal
	Allowances             decimal.Decimal
	OtherDeductions        decimal.Decimal
}

// Result is the calculator output. NetPay may be negative.
type Result struct {
	Rates RateConfiguration

	PresentDays      int
	LateDays         int
	AbsentDays       int
	OnLeaveDays      int
	WorkedDays       int
	TotalLateMinutes int
	OvertimeHours    decimal.Decimal

	OvertimePay     decimal.Decimal
	LateDeductions  decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// Materializable reports whether the result may be stored as a payslip.
func (r Result) Materializable() bool {
	return !r.NetPay.IsNegative()
}

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusGenerated PayslipStatus = "generated"
)

// Payslip is an immutable snapshot of one payroll result. Corrections are
// made by deleting and regenerating.
type Payslip struct {
	ID          int64
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicSalary            decimal.Decimal
	HourlyRate             decimal.Decimal
	OvertimeMultiplier     decimal.Decimal
	OvertimeHours          decimal.Decimal
	OvertimePay            decimal.Decimal
	LateMinutes            int
	LateDeductionPerMinute decimal.Decimal
	LateDeductions         decimal.Decimal
	Allowances             decimal.Decimal
	OtherDeductions        decimal.Decimal
	TotalDeductions        decimal.Decimal
	GrossPay               decimal.Decimal
	NetPay                 decimal.Decimal

	PresentDays int
	LateDays    int
	AbsentDays  int
	OnLeaveDays int
	WorkedDays  int

	GeneratedBy *string
	GeneratedAt time.Time
	Status      PayslipStatus

	// Joined fields
	EmployeeName *string
}

// Number is the display identifier, e.g. "000042".
func (p Payslip) Number() string {
	return fmt.Sprintf("%06d", p.ID)
}

// NewPayslip snapshots result for the period. ID and GeneratedAt are set by the store.
func NewPayslip(employeeID string, start, end time.Time, result Result, generatedBy *string) Payslip {
	return Payslip{
		EmployeeID:             employeeID,
		PeriodStart:            start,
		PeriodEnd:              end,
		BasicSalary:            result.Rates.BasicSalary,
		HourlyRate:             result.Rates.HourlyRate,
		OvertimeMultiplier:     result.Rates.OvertimeMultiplier,
		OvertimeHours:          result.OvertimeHours,
		OvertimePay:            result.OvertimePay,
		LateMinutes:            result.TotalLateMinutes,
		LateDeductionPerMinute: result.Rates.LateDeductionPerMinute,
		LateDeductions:         result.LateDeductions,
		Allowances:             result.Rates.Allowances,
		OtherDeductions:        result.Rates.OtherDeductions,
		TotalDeductions:        result.TotalDeductions,
		GrossPay:               result.GrossPay,
		NetPay:                 result.NetPay,
		PresentDays:            result.PresentDays,
		LateDays:               result.LateDays,
		AbsentDays:             result.AbsentDays,
		OnLeaveDays:            result.OnLeaveDays,
		WorkedDays:             result.WorkedDays,
		GeneratedBy:            generatedBy,
		Status:                 PayslipStatusGenerated,
	}
}
