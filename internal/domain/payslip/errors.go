package payslip

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this employee and period")
	ErrNoActiveSalary       = errors.New("employee has no active salary record for the period")
	ErrInvalidPolicy        = errors.New("invalid payslip policy")
)
