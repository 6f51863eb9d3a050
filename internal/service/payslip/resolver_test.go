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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func salaryRecord(id string, amount int64, start time.Time, end *time.Time) employee.SalaryRecord {
	return employee.SalaryRecord{
		ID:          id,
		EmployeeID:  "emp-1",
		BasicSalary: decimal.NewFromInt(amount),
		StartDate:   start,
		EndDate:     end,
	}
}

func TestResolveCurrentSalary_SingleOpenRecord(t *testing.T) {
	records := []employee.SalaryRecord{
		salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
	}

	current, diags, err := ResolveCurrentSalary(records, date(2024, time.June, 15))
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "s1", current.ID)
}

func TestResolveCurrentSalary_EndDateInclusive(t *testing.T) {
	end := date(2024, time.June, 15)
	records := []employee.SalaryRecord{
		salaryRecord("s1", 50000, date(2024, time.January, 1), &end),
	}

	// Active through its last day.
	current, _, err := ResolveCurrentSalary(records, date(2024, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, "s1", current.ID)

	// Inactive the day after.
	_, _, err = ResolveCurrentSalary(records, date(2024, time.June, 16))
	assert.ErrorIs(t, err, payslip.ErrNoActiveSalary)
}

func TestResolveCurrentSalary_StartDateNotYetReached(t *testing.T) {
	records := []employee.SalaryRecord{
		salaryRecord("s1", 50000, date(2024, time.July, 1), nil),
	}

	_, _, err := ResolveCurrentSalary(records, date(2024, time.June, 30))
	assert.ErrorIs(t, err, payslip.ErrNoActiveSalary)
}

func TestResolveCurrentSalary_NoRecords(t *testing.T) {
	_, _, err := ResolveCurrentSalary(nil, date(2024, time.June, 15))
	assert.ErrorIs(t, err, payslip.ErrNoActiveSalary)
}

func TestResolveCurrentSalary_MultipleOpenRecordsPicksLatestStart(t *testing.T) {
	records := []employee.SalaryRecord{
		salaryRecord("s1", 50000, date(2024, time.January, 1), nil),
		salaryRecord("s2", 60000, date(2024, time.March, 1), nil),
	}

	current, diags, err := ResolveCurrentSalary(records, date(2024, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, "s2", current.ID)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "2 salary records active")
	assert.Contains(t, diags[0], "s2")
}

func TestResolveCurrentSalary_TieBrokenByID(t *testing.T) {
	start := date(2024, time.March, 1)
	records := []employee.SalaryRecord{
		salaryRecord("s1", 50000, start, nil),
		salaryRecord("s2", 60000, start, nil),
	}

	current, diags, err := ResolveCurrentSalary(records, date(2024, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, "s2", current.ID)
	assert.Len(t, diags, 1)
}

func TestResolveActivePayRecords(t *testing.T) {
	ended := date(2024, time.May, 31)
	records := []employee.PayRecord{
		{ID: "r1", StartDate: date(2024, time.January, 1), EndDate: nil},
		{ID: "r2", StartDate: date(2024, time.January, 1), EndDate: &ended},
		{ID: "r3", StartDate: date(2024, time.July, 1), EndDate: nil},
	}

	active := ResolveActivePayRecords(records, date(2024, time.June, 15))
	require.Len(t, active, 1)
	assert.Equal(t, "r1", active[0].ID)

	// End date is inclusive.
	active = ResolveActivePayRecords(records, date(2024, time.May, 31))
	assert.Len(t, active, 2)
}
