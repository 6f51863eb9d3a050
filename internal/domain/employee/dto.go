package employee

import (
	"time"

	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validEmploymentTypes = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeContract),
	string(EmploymentTypeTemporary),
	string(EmploymentTypeIntern),
}

type CreateEmployeeRequest struct {
	EmployeeCode      string           `json:"employee_code"`
	FullName          string           `json:"full_name"`
	Email             string           `json:"email"`
	Phone             *string          `json:"phone,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Position          *string          `json:"position,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	HireDate          *string          `json:"hire_date,omitempty"`
	EmploymentType    *string          `json:"employment_type,omitempty"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.HireDate != nil {
		hireDate, ok := validator.IsValidDate(*r.HireDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must use YYYY-MM-DD format"})
		} else if hireDate.After(time.Now()) {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "cannot be in the future"})
		}
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, validEmploymentTypes) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "is not a valid employment type"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Position          *string          `json:"position,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	HireDate          *string          `json:"hire_date,omitempty"`
	EmploymentType    *string          `json:"employment_type,omitempty"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.HireDate != nil {
		hireDate, ok := validator.IsValidDate(*r.HireDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must use YYYY-MM-DD format"})
		} else if hireDate.After(time.Now()) {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "cannot be in the future"})
		}
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, validEmploymentTypes) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "is not a valid employment type"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search         string
	Department     *string
	EmploymentType *string
	HireDateFrom   *time.Time
	HireDateTo     *time.Time
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

type EmployeeResponse struct {
	ID                string           `json:"id"`
	EmployeeCode      string           `json:"employee_code"`
	FullName          string           `json:"full_name"`
	Email             string           `json:"email"`
	Phone             *string          `json:"phone,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Position          *string          `json:"position,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	HireDate          *string          `json:"hire_date,omitempty"`
	EmploymentType    *string          `json:"employment_type,omitempty"`
	IsActive          bool             `json:"is_active"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
	CreatedAt         string           `json:"created_at"`
}

type SalaryRecordResponse struct {
	ID          string          `json:"id"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
}

type PayRecordResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	IsFixed   bool            `json:"is_fixed"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date,omitempty"`
}

// EmployeeDetailResponse is the full read model for one employee: the current
// salary, recent salary history, the records active today, and fixed-sum totals.
type EmployeeDetailResponse struct {
	EmployeeResponse
	CurrentSalary *SalaryRecordResponse  `json:"current_salary,omitempty"`
	SalaryHistory []SalaryRecordResponse `json:"salary_history"`
	Allowances    []PayRecordResponse    `json:"allowances"`
	Deductions    []PayRecordResponse    `json:"deductions"`
	PayslipCount  int64                  `json:"payslip_count"`
	Summary       EmployeeRecordSummary  `json:"summary"`
}

type EmployeeRecordSummary struct {
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetAdditions    decimal.Decimal `json:"net_additions"`
	YearsOfService  int             `json:"years_of_service"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type OpenPayRecordRequest struct {
	EmployeeID string          `json:"-"`
	Kind       RecordKind      `json:"-"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	IsFixed    *bool           `json:"is_fixed,omitempty"`
	StartDate  *string         `json:"start_date,omitempty"`
	EndDate    *string         `json:"end_date,omitempty"`
}

func (r *OpenPayRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "cannot be negative"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must use YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must use YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClosePayRecordRequest struct {
	EmployeeID string  `json:"-"`
	RecordID   string  `json:"-"`
	EndDate    *string `json:"end_date,omitempty"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type EmploymentTypeCount struct {
	EmploymentType string `json:"employment_type"`
	Count          int64  `json:"count"`
}

// EmployeeOptionsResponse backs the form dropdowns and headcount statistics.
type EmployeeOptionsResponse struct {
	Departments      []string              `json:"departments"`
	EmploymentTypes  []string              `json:"employment_types"`
	TotalEmployees   int64                 `json:"total_employees"`
	ByDepartment     []DepartmentCount     `json:"by_department"`
	ByEmploymentType []EmploymentTypeCount `json:"by_employment_type"`
}
