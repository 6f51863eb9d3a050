package payslip

import (
	"testing"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedPayslip(net string, generated time.Time) payslip.Payslip {
	return payslip.Payslip{
		NetSalary:     decimal.RequireFromString(net),
		DateGenerated: generated,
	}
}

func TestMonthWindowStart(t *testing.T) {
	now := date(2024, time.June, 15)

	// Window of 1 covers only the current month.
	assert.Equal(t, date(2024, time.June, 1), MonthWindowStart(now, 1))
	assert.Equal(t, date(2024, time.January, 1), MonthWindowStart(now, 6))

	// Crosses the year boundary.
	assert.Equal(t, date(2023, time.July, 1), MonthWindowStart(now, 12))

	// Degenerate window clamps to 1.
	assert.Equal(t, date(2024, time.June, 1), MonthWindowStart(now, 0))
}

func TestPeriodBounds(t *testing.T) {
	from, to := PeriodBounds(date(2024, time.June, 1))
	assert.Equal(t, date(2024, time.June, 1), from)
	assert.Equal(t, date(2024, time.July, 1), to)
}

func TestPeriodBounds_DecemberRollsIntoNextYear(t *testing.T) {
	from, to := PeriodBounds(date(2024, time.December, 1))
	assert.Equal(t, date(2024, time.December, 1), from)
	assert.Equal(t, date(2025, time.January, 1), to)
}

func TestAggregateByMonth(t *testing.T) {
	now := date(2024, time.June, 15)
	payslips := []payslip.Payslip{
		generatedPayslip("1000", date(2024, time.June, 1)),
		generatedPayslip("2000", date(2024, time.June, 20)),
		generatedPayslip("500", date(2024, time.April, 10)),
		// Before the window, must be excluded.
		generatedPayslip("9999", date(2023, time.December, 31)),
	}

	result := AggregateByMonth(payslips, 6, now)

	// Sparse: May has no payslips and gets no bucket.
	require.Len(t, result, 2)
	assert.Equal(t, "2024-04", result[0].Period)
	assert.True(t, decimal.RequireFromString("500").Equal(result[0].NetTotal))
	assert.Equal(t, "2024-06", result[1].Period)
	assert.True(t, decimal.RequireFromString("3000").Equal(result[1].NetTotal))
}

func TestAggregateByMonth_Empty(t *testing.T) {
	result := AggregateByMonth(nil, 6, date(2024, time.June, 15))
	assert.Empty(t, result)
}

func strPtr(s string) *string { return &s }

func TestAggregateByDepartment(t *testing.T) {
	rows := []payslip.DepartmentNetRow{
		{Department: strPtr("Engineering"), NetSalary: decimal.RequireFromString("500")},
		{Department: strPtr("Sales"), NetSalary: decimal.RequireFromString("300")},
		{Department: strPtr("Sales"), NetSalary: decimal.RequireFromString("500")},
		{Department: nil, NetSalary: decimal.RequireFromString("50")},
	}

	result := AggregateByDepartment(rows)

	require.Len(t, result, 3)
	assert.Equal(t, "Sales", result[0].Department)
	assert.True(t, decimal.RequireFromString("800").Equal(result[0].NetTotal))
	assert.Equal(t, "Engineering", result[1].Department)
	assert.Equal(t, UnassignedDepartment, result[2].Department)
	assert.True(t, decimal.RequireFromString("50").Equal(result[2].NetTotal))
}

func TestAggregateByDepartment_EmptyStringIsUnassigned(t *testing.T) {
	rows := []payslip.DepartmentNetRow{
		{Department: strPtr(""), NetSalary: decimal.RequireFromString("100")},
		{Department: nil, NetSalary: decimal.RequireFromString("200")},
	}

	result := AggregateByDepartment(rows)

	require.Len(t, result, 1)
	assert.Equal(t, UnassignedDepartment, result[0].Department)
	assert.True(t, decimal.RequireFromString("300").Equal(result[0].NetTotal))
}

func TestAggregateByDepartment_EqualTotalsOrderedByName(t *testing.T) {
	rows := []payslip.DepartmentNetRow{
		{Department: strPtr("Sales"), NetSalary: decimal.RequireFromString("500")},
		{Department: strPtr("Engineering"), NetSalary: decimal.RequireFromString("500")},
	}

	result := AggregateByDepartment(rows)

	require.Len(t, result, 2)
	assert.Equal(t, "Engineering", result[0].Department)
	assert.Equal(t, "Sales", result[1].Department)
}
