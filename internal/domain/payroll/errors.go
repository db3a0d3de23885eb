package payroll

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this employee and period")
	ErrNegativeNetPay       = errors.New("net pay is negative, adjust rates or deductions before generating")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
