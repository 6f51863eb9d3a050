package payslip

import (
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	EmployeeID string  `json:"-"`
	Period     *string `json:"period,omitempty"`      // "YYYY-MM"; defaults to the current month
	MonthLabel *string `json:"month_label,omitempty"` // defaults to "January 2006" style
	Policy     *string `json:"policy,omitempty"`      // "flat" or "itemized"; defaults from config
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period != nil {
		if _, err := validator.ParsePeriod(*r.Period); err != nil {
			errs = append(errs, validator.ValidationError{Field: "period", Message: "must use YYYY-MM format"})
		}
	}
	if r.Policy != nil && *r.Policy != string(PolicyFlat) && *r.Policy != string(PolicyItemized) {
		errs = append(errs, validator.ValidationError{Field: "policy", Message: "must be 'flat' or 'itemized'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeCode  string          `json:"employee_code,omitempty"`
	Department    *string         `json:"department,omitempty"`
	Period        string          `json:"period"`
	MonthLabel    string          `json:"month_label"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	Policy        string          `json:"policy"`
	Diagnostics   []string        `json:"diagnostics,omitempty"`
	DateGenerated string          `json:"date_generated"`
}

type PayslipFilter struct {
	EmployeeID *string
	Period     *string
	Page       int
	Limit      int
}

type ListPayslipResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// PayslipView is the projector output handed to the external PDF/HTML renderer.
// Monetary fields are pre-formatted to exactly two decimals.
type PayslipView struct {
	PayslipID     string  `json:"payslip_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeCode  string  `json:"employee_code"`
	Department    string  `json:"department"`
	Position      *string `json:"position,omitempty"`
	Period        string  `json:"period"`
	MonthLabel    string  `json:"month_label"`
	GrossSalary   string  `json:"gross_salary"`
	Deductions    string  `json:"deductions"`
	NetSalary     string  `json:"net_salary"`
	DateGenerated string  `json:"date_generated"`
}

// MonthlyNetTotal is one bucket of the month-window aggregation.
type MonthlyNetTotal struct {
	Period   string          `json:"period"` // "YYYY-MM"
	NetTotal decimal.Decimal `json:"net_total"`
}

// DepartmentNetTotal is one bucket of the department aggregation.
type DepartmentNetTotal struct {
	Department string          `json:"department"`
	NetTotal   decimal.Decimal `json:"net_total"`
}

// PeriodSummary reports headline counts and the period net total.
type PeriodSummary struct {
	Period         string          `json:"period"`
	TotalEmployees int64           `json:"total_employees"`
	TotalPayslips  int64           `json:"total_payslips"`
	PeriodNetTotal decimal.Decimal `json:"period_net_total"`
}
