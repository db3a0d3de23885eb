package payroll

import (
	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculate derives pay from an attendance summary. It never clamps: a
// negative NetPay is returned as is and must be refused by the caller.
func Calculate(summary attendance.Summary, rates payroll.RateConfiguration) payroll.Result {
	overtimeHours := decimal.NewFromFloat(summary.OvertimeHours())
	lateMinutes := decimal.NewFromInt(int64(summary.TotalLateMinutes))

	overtimePay := overtimeHours.Mul(rates.HourlyRate.Mul(rates.OvertimeMultiplier))
	lateDeductions := lateMinutes.Mul(rates.LateDeductionPerMinute)
	grossPay := rates.BasicSalary.Add(rates.Allowances).Add(overtimePay).Round(payroll.MoneyPlaces)
	totalDeductions := rates.OtherDeductions.Add(lateDeductions).Round(payroll.MoneyPlaces)
	// NetPay is exactly GrossPay minus TotalDeductions as stored.
	netPay := grossPay.Sub(totalDeductions)

	return payroll.Result{
		Rates:            rates,
		PresentDays:      summary.PresentDays,
		LateDays:         summary.LateDays,
		AbsentDays:       summary.AbsentDays,
		OnLeaveDays:      summary.OnLeaveDays,
		WorkedDays:       summary.WorkedDays,
		TotalLateMinutes: summary.TotalLateMinutes,
		OvertimeHours:    overtimeHours,
		OvertimePay:      overtimePay.Round(payroll.MoneyPlaces),
		LateDeductions:   lateDeductions.Round(payroll.MoneyPlaces),
		GrossPay:         grossPay,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
	}
}
