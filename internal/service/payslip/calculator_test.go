package payslip

import (
	"testing"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payRecord(id string, kind employee.RecordKind, amount string, isFixed bool) employee.PayRecord {
	return employee.PayRecord{
		ID:         id,
		EmployeeID: "emp-1",
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
		IsFixed:    isFixed,
		StartDate:  date(2024, time.January, 1),
	}
}

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s", expected, actual.String())
}

func TestCalculator_FlatPolicy(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	result, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 100000, date(2024, time.January, 1), nil),
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyFlat)

	require.NoError(t, err)
	assertDecimalEqual(t, "100000", result.GrossSalary)
	assertDecimalEqual(t, "10000", result.Deductions)
	assertDecimalEqual(t, "90000", result.NetSalary)
	assert.Empty(t, result.Diagnostics)
}

func TestCalculator_FlatPolicyRoundsHalfUp(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	result, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			{
				ID:          "s1",
				EmployeeID:  "emp-1",
				BasicSalary: decimal.RequireFromString("33333.35"),
				StartDate:   date(2024, time.January, 1),
			},
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyFlat)

	require.NoError(t, err)
	// 33333.35 * 0.10 = 3333.335, rounds half-up to 3333.34
	assertDecimalEqual(t, "3333.34", result.Deductions)
	assertDecimalEqual(t, "30000.01", result.NetSalary)
}

func TestCalculator_ItemizedPolicy(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	result, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
		},
		Allowances: []employee.PayRecord{
			payRecord("a1", employee.RecordKindAllowance, "2000", true),
			payRecord("a2", employee.RecordKindAllowance, "9999", false), // variable, excluded
		},
		Deductions: []employee.PayRecord{
			payRecord("d1", employee.RecordKindDeduction, "500", true),
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyItemized)

	require.NoError(t, err)
	assertDecimalEqual(t, "52000", result.GrossSalary)
	assertDecimalEqual(t, "500", result.Deductions)
	assertDecimalEqual(t, "51500", result.NetSalary)
}

func TestCalculator_ItemizedPolicyIgnoresInactiveRecords(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	ended := date(2024, time.March, 31)
	expired := payRecord("a2", employee.RecordKindAllowance, "3000", true)
	expired.EndDate = &ended

	result, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
		},
		Allowances: []employee.PayRecord{
			payRecord("a1", employee.RecordKindAllowance, "2000", true),
			expired,
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyItemized)

	require.NoError(t, err)
	assertDecimalEqual(t, "52000", result.GrossSalary)
	assertDecimalEqual(t, "0", result.Deductions)
}

func TestCalculator_NoActiveSalary(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	_, err := calc.Compute(CalculatorInput{
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyFlat)

	assert.ErrorIs(t, err, payslip.ErrNoActiveSalary)
}

func TestCalculator_InvalidPolicy(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	_, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.Policy("bogus"))

	assert.ErrorIs(t, err, payslip.ErrInvalidPolicy)
}

func TestCalculator_DiagnosticsPropagated(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	result, err := calc.Compute(CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
			salaryRecord("s2", 60000, date(2024, time.March, 1), nil),
		},
		AsOf: date(2024, time.June, 30),
	}, payslip.PolicyFlat)

	require.NoError(t, err)
	// Latest open record wins and the anomaly is reported, not fatal.
	assertDecimalEqual(t, "60000", result.GrossSalary)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0], "inconsistent record state")
}

func TestCalculator_DeterministicForSameInput(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("0.10"))

	input := CalculatorInput{
		Salaries: []employee.SalaryRecord{
			salaryRecord("s1", 72345, date(2024, time.January, 1), nil),
		},
		Allowances: []employee.PayRecord{
			payRecord("a1", employee.RecordKindAllowance, "1234.56", true),
		},
		Deductions: []employee.PayRecord{
			payRecord("d1", employee.RecordKindDeduction, "78.90", true),
		},
		AsOf: date(2024, time.June, 30),
	}

	first, err := calc.Compute(input, payslip.PolicyItemized)
	require.NoError(t, err)
	second, err := calc.Compute(input, payslip.PolicyItemized)
	require.NoError(t, err)

	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
}
