package payroll

import (
	"testing"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest() PayrollRequest {
	return PayrollRequest{
		EmployeeID:  "123e4567-e89b-12d3-a456-426614174000",
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-31",
		BasicSalary: amount("5000"),
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestPayrollRequest_Validate(t *testing.T) {
	req := validRequest()
	req.HourlyRate = amount("75.1234")
	req.OvertimeMultiplier = amount("1.125")
	require.NoError(t, req.Validate())

	start, end := req.Period()
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 31, end.Day())
}

func TestPayrollRequest_ValidateRejectsUnboundedPeriod(t *testing.T) {
	req := validRequest()
	req.PeriodStart = "0001-01-01"
	req.PeriodEnd = "9999-12-31"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields["period_end"], "within 62 days")
}

func TestPayrollRequest_ValidateDecimalPlaces(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(r *PayrollRequest)
		field string
	}{
		{"salary in centavos only", func(r *PayrollRequest) { r.BasicSalary = amount("5000.005") }, "basic_salary"},
		{"allowances", func(r *PayrollRequest) { r.Allowances = amount("10.125") }, "allowances"},
		{"other deductions", func(r *PayrollRequest) { r.OtherDeductions = amount("1.001") }, "other_deductions"},
		{"hourly rate", func(r *PayrollRequest) { r.HourlyRate = amount("75.00001") }, "hourly_rate"},
		{"late rate", func(r *PayrollRequest) { r.LateDeductionPerMinute = amount("2.12345") }, "late_deduction_per_minute"},
		{"multiplier", func(r *PayrollRequest) { r.OvertimeMultiplier = amount("1.12345") }, "overtime_multiplier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mod(&req)

			fields := validationFields(t, req.Validate())
			assert.Contains(t, fields[tt.field], "decimal places")
		})
	}
}

func TestPayrollRequest_ValidateMultiplierBelowOne(t *testing.T) {
	req := validRequest()
	req.OvertimeMultiplier = amount("0.95")

	fields := validationFields(t, req.Validate())
	assert.Equal(t, "must be at least 1.0", fields["overtime_multiplier"])
}
