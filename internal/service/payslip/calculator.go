package payslip

import (
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

// Computation is the result of one payslip calculation. Gross, Deductions and
// Net are already rounded half-up to 2 decimal places; the invariant
// Net = round(Gross - Deductions, 2) holds by construction.
type Computation struct {
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Diagnostics []string
}

// CalculatorInput is the snapshot a calculation runs over. The calculator never
// reads storage; callers pass the employee's records and the reference date.
type CalculatorInput struct {
	Salaries   []employee.SalaryRecord
	Allowances []employee.PayRecord
	Deductions []employee.PayRecord
	AsOf       time.Time
}

// Calculator computes payslips under the flat-rate and itemized policies.
type Calculator struct {
	flatRate decimal.Decimal
}

func NewCalculator(flatRate decimal.Decimal) *Calculator {
	return &Calculator{flatRate: flatRate}
}

// Compute runs the selected policy over the input snapshot.
//
// Rounding happens exactly once, on the final gross/deduction amounts;
// per-record amounts are summed at full precision first. Running the same
// input twice yields the same numbers; persistence identity is a storage
// concern, not the calculator's.
func (c *Calculator) Compute(in CalculatorInput, policy payslip.Policy) (Computation, error) {
	salary, diags, err := ResolveCurrentSalary(in.Salaries, in.AsOf)
	if err != nil {
		return Computation{}, err
	}

	var gross, deductions decimal.Decimal
	switch policy {
	case payslip.PolicyFlat:
		gross = salary.BasicSalary
		deductions = gross.Mul(c.flatRate)
	case payslip.PolicyItemized:
		gross = salary.BasicSalary.Add(sumFixed(ResolveActivePayRecords(in.Allowances, in.AsOf)))
		deductions = sumFixed(ResolveActivePayRecords(in.Deductions, in.AsOf))
	default:
		return Computation{}, payslip.ErrInvalidPolicy
	}

	gross = gross.Round(2)
	deductions = deductions.Round(2)

	return Computation{
		GrossSalary: gross,
		Deductions:  deductions,
		NetSalary:   gross.Sub(deductions).Round(2),
		Diagnostics: diags,
	}, nil
}

// sumFixed totals the fixed records only; variable/one-off amounts are
// informational and never enter the automatic computation.
func sumFixed(records []employee.PayRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.IsFixed {
			total = total.Add(r.Amount)
		}
	}
	return total
}
