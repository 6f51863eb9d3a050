package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy selects how a payslip is computed.
type Policy string

const (
	// PolicyFlat deducts a flat configurable rate from the basic salary.
	PolicyFlat Policy = "flat"
	// PolicyItemized sums active fixed allowances into gross and active fixed
	// deductions into deductions.
	PolicyItemized Policy = "itemized"
)

// Payslip is an append-only pay statement for one employee and period.
// Invariant: NetSalary = round(GrossSalary - Deductions, 2), all three rounded
// half-up to 2 decimal places at generation time. Corrections never update a
// payslip; they generate a new one under an override period.
type Payslip struct {
	ID            string
	EmployeeID    string
	Period        string // "YYYY-MM", the payroll run key
	MonthLabel    string // display label, e.g. "January 2025"
	GrossSalary   decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	Policy        Policy
	Diagnostics   []string
	DateGenerated time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// DepartmentNetRow is a storage-level join row feeding department aggregation.
type DepartmentNetRow struct {
	Department *string
	NetSalary  decimal.Decimal
}
