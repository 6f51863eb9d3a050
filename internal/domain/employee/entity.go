package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	UserID            *string
	EmployeeCode      string
	FullName          string
	Email             string
	Phone             *string
	Department        *string
	Position          *string
	BankName          *string
	BankAccountNumber *string
	HireDate          *time.Time
	EmploymentType    *EmploymentType
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EmploymentType string

const (
	EmploymentTypeFullTime  EmploymentType = "full-time"
	EmploymentTypePartTime  EmploymentType = "part-time"
	EmploymentTypeContract  EmploymentType = "contract"
	EmploymentTypeTemporary EmploymentType = "temporary"
	EmploymentTypeIntern    EmploymentType = "intern"
)

// SalaryRecord is one effective-dated base-salary value. At most one record per
// employee may be open (EndDate == nil); a salary change closes the open record
// and opens a new one the same day.
type SalaryRecord struct {
	ID          string
	EmployeeID  string
	BasicSalary decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

// RecordKind distinguishes allowance from deduction rows; both share the same
// effective-dating lifecycle.
type RecordKind string

const (
	RecordKindAllowance RecordKind = "allowance"
	RecordKindDeduction RecordKind = "deduction"
)

// PayRecord is an effective-dated allowance or deduction. IsFixed marks a flat
// recurring amount; non-fixed amounts are informational and excluded from
// automatic payslip totals. Unlike salary, many may be concurrently open.
type PayRecord struct {
	ID         string
	EmployeeID string
	Kind       RecordKind
	Name       string
	Amount     decimal.Decimal
	IsFixed    bool
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
}
