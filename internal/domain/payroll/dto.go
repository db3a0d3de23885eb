package payroll

import (
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALCULATION DTOs ==========

// Scales of the payslip snapshot columns. Inputs finer than these would not
// survive storage.
const (
	MoneyPlaces int32 = 2
	RatePlaces  int32 = 4
)

// PayrollRequest drives both preview and generation. The period is either a
// calendar month or an explicit date range. Rate fields left empty take the
// configured defaults.
type PayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth *int   `json:"period_month,omitempty"`
	PeriodYear  *int   `json:"period_year,omitempty"`
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`

	BasicSalary            *decimal.Decimal `json:"basic_salary"`
	HourlyRate             *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeMultiplier     *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	LateDeductionPerMinute *decimal.Decimal `json:"late_deduction_per_minute,omitempty"`
	Allowances             *decimal.Decimal `json:"allowances,omitempty"`
	OtherDeductions        *decimal.Decimal `json:"other_deductions,omitempty"`

	GeneratedBy *string `json:"-"`

	start time.Time
	end   time.Time
}

func (r *PayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "must be a valid UUID")
	}

	switch {
	case r.PeriodMonth != nil || r.PeriodYear != nil:
		if r.PeriodMonth == nil || *r.PeriodMonth < 1 || *r.PeriodMonth > 12 {
			errs.Add("period_month", "must be between 1 and 12")
		}
		if r.PeriodYear == nil || *r.PeriodYear < 2000 || *r.PeriodYear > 2100 {
			errs.Add("period_year", "must be between 2000 and 2100")
		}
		if r.PeriodMonth != nil && r.PeriodYear != nil {
			r.start, r.end = clock.MonthPeriod(*r.PeriodYear, time.Month(*r.PeriodMonth))
		}
	default:
		r.start, r.end = validator.CheckPeriod(&errs, r.PeriodStart, r.PeriodEnd)
	}

	if r.BasicSalary == nil {
		errs.Add("basic_salary", "is required")
	}
	amounts := []struct {
		field  string
		value  *decimal.Decimal
		places int32
	}{
		{"basic_salary", r.BasicSalary, MoneyPlaces},
		{"hourly_rate", r.HourlyRate, RatePlaces},
		{"late_deduction_per_minute", r.LateDeductionPerMinute, RatePlaces},
		{"allowances", r.Allowances, MoneyPlaces},
		{"other_deductions", r.OtherDeductions, MoneyPlaces},
	}
	for _, a := range amounts {
		switch {
		case !validator.IsNonNegative(a.value):
			errs.Add(a.field, "must be non-negative")
		case !validator.HasMaxPlaces(a.value, a.places):
			errs.Add(a.field, fmt.Sprintf("must have at most %d decimal places", a.places))
		}
	}
	switch {
	case r.OvertimeMultiplier == nil:
	case r.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)):
		errs.Add("overtime_multiplier", "must be at least 1.0")
	case !validator.HasMaxPlaces(r.OvertimeMultiplier, RatePlaces):
		errs.Add("overtime_multiplier", fmt.Sprintf("must have at most %d decimal places", RatePlaces))
	}

	return errs.Err()
}

// Period returns the resolved pay period; valid only after Validate succeeds.
func (r *PayrollRequest) Period() (time.Time, time.Time) {
	return r.start, r.end
}

// Rates layers the request's rate fields over defaults.
func (r *PayrollRequest) Rates(defaults RateConfiguration) RateConfiguration {
	rates := defaults
	pick := func(dst *decimal.Decimal, v *decimal.Decimal) {
		if v != nil {
			*dst = *v
		}
	}
	pick(&rates.BasicSalary, r.BasicSalary)
	pick(&rates.HourlyRate, r.HourlyRate)
	pick(&rates.OvertimeMultiplier, r.OvertimeMultiplier)
	pick(&rates.LateDeductionPerMinute, r.LateDeductionPerMinute)
	pick(&rates.Allowances, r.Allowances)
	pick(&rates.OtherDeductions, r.OtherDeductions)
	return rates
}

type RatesResponse struct {
	BasicSalary            decimal.Decimal `json:"basic_salary"`
	HourlyRate             decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier     decimal.Decimal `json:"overtime_multiplier"`
	LateDeductionPerMinute decimal.Decimal `json:"late_deduction_per_minute"`
	Allowances             decimal.Decimal `json:"allowances"`
	OtherDeductions        decimal.Decimal `json:"other_deductions"`
}

type PreviewResponse struct {
	EmployeeID  string        `json:"employee_id"`
	PeriodStart string        `json:"period_start"`
	PeriodEnd   string        `json:"period_end"`
	Rates       RatesResponse `json:"rates"`

	PresentDays   int             `json:"present_days"`
	LateDays      int             `json:"late_days"`
	AbsentDays    int             `json:"absent_days"`
	OnLeaveDays   int             `json:"on_leave_days"`
	WorkedDays    int             `json:"worked_days"`
	LateMinutes   int             `json:"late_minutes"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	LateDeductions  decimal.Decimal `json:"late_deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	CanGenerate     bool            `json:"can_generate"`

	Days []attendance.DayDetailResponse `json:"days"`
}

func NewPreviewResponse(employeeID string, start, end time.Time, result Result, days []attendance.DayDetail) PreviewResponse {
	return PreviewResponse{
		EmployeeID:      employeeID,
		PeriodStart:     clock.DateKey(start),
		PeriodEnd:       clock.DateKey(end),
		Rates:           newRatesResponse(result.Rates),
		PresentDays:     result.PresentDays,
		LateDays:        result.LateDays,
		AbsentDays:      result.AbsentDays,
		OnLeaveDays:     result.OnLeaveDays,
		WorkedDays:      result.WorkedDays,
		LateMinutes:     result.TotalLateMinutes,
		OvertimeHours:   result.OvertimeHours,
		OvertimePay:     result.OvertimePay,
		LateDeductions:  result.LateDeductions,
		GrossPay:        result.GrossPay,
		TotalDeductions: result.TotalDeductions,
		NetPay:          result.NetPay,
		CanGenerate:     result.Materializable(),
		Days:            attendance.NewDayDetailResponses(days),
	}
}

func newRatesResponse(r RateConfiguration) RatesResponse {
	return RatesResponse{
		BasicSalary:            r.BasicSalary,
		HourlyRate:             r.HourlyRate,
		OvertimeMultiplier:     r.OvertimeMultiplier,
		LateDeductionPerMinute: r.LateDeductionPerMinute,
		Allowances:             r.Allowances,
		OtherDeductions:        r.OtherDeductions,
	}
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID           int64   `json:"id"`
	Number       string  `json:"number"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`

	BasicSalary            decimal.Decimal `json:"basic_salary"`
	HourlyRate             decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier     decimal.Decimal `json:"overtime_multiplier"`
	OvertimeHours          decimal.Decimal `json:"overtime_hours"`
	OvertimePay            decimal.Decimal `json:"overtime_pay"`
	LateMinutes            int             `json:"late_minutes"`
	LateDeductionPerMinute decimal.Decimal `json:"late_deduction_per_minute"`
	LateDeductions         decimal.Decimal `json:"late_deductions"`
	Allowances             decimal.Decimal `json:"allowances"`
	OtherDeductions        decimal.Decimal `json:"other_deductions"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`
	GrossPay               decimal.Decimal `json:"gross_pay"`
	NetPay                 decimal.Decimal `json:"net_pay"`

	PresentDays int `json:"present_days"`
	LateDays    int `json:"late_days"`
	AbsentDays  int `json:"absent_days"`
	OnLeaveDays int `json:"on_leave_days"`
	WorkedDays  int `json:"worked_days"`

	GeneratedBy *string       `json:"generated_by,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Status      PayslipStatus `json:"status"`

	// Days is only filled on the single-payslip view.
	Days []attendance.DayDetailResponse `json:"days,omitempty"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:                     p.ID,
		Number:                 p.Number(),
		EmployeeID:             p.EmployeeID,
		EmployeeName:           p.EmployeeName,
		PeriodStart:            clock.DateKey(p.PeriodStart),
		PeriodEnd:              clock.DateKey(p.PeriodEnd),
		BasicSalary:            p.BasicSalary,
		HourlyRate:             p.HourlyRate,
		OvertimeMultiplier:     p.OvertimeMultiplier,
		OvertimeHours:          p.OvertimeHours,
		OvertimePay:            p.OvertimePay,
		LateMinutes:            p.LateMinutes,
		LateDeductionPerMinute: p.LateDeductionPerMinute,
		LateDeductions:         p.LateDeductions,
		Allowances:             p.Allowances,
		OtherDeductions:        p.OtherDeductions,
		TotalDeductions:        p.TotalDeductions,
		GrossPay:               p.GrossPay,
		NetPay:                 p.NetPay,
		PresentDays:            p.PresentDays,
		LateDays:               p.LateDays,
		AbsentDays:             p.AbsentDays,
		OnLeaveDays:            p.OnLeaveDays,
		WorkedDays:             p.WorkedDays,
		GeneratedBy:            p.GeneratedBy,
		GeneratedAt:            p.GeneratedAt,
		Status:                 p.Status,
	}
}
