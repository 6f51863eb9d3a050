package payslip

import (
	"sort"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UnassignedDepartment buckets payslips of employees without a department.
const UnassignedDepartment = "Unassigned"

// MonthWindowStart returns the first day of the month windowMonths-1 months
// before now's month, in UTC. A window of 1 covers only the current month.
func MonthWindowStart(now time.Time, windowMonths int) time.Time {
	if windowMonths < 1 {
		windowMonths = 1
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(windowMonths - 1), 0)
}

// PeriodBounds returns the half-open [first day, first day of next month)
// interval for a period's month. AddDate carries December into January of the
// next year.
func PeriodBounds(period time.Time) (from, to time.Time) {
	from = time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// AggregateByMonth groups payslips generated on or after the window start by
// the calendar month of their generation date, sums net pay, and orders the
// buckets ascending. Months with no payslips are omitted: the result is
// sparse, matching what consumers of the original reports see.
func AggregateByMonth(payslips []payslip.Payslip, windowMonths int, now time.Time) []payslip.MonthlyNetTotal {
	start := MonthWindowStart(now, windowMonths)

	totals := make(map[string]decimal.Decimal)
	for _, p := range payslips {
		if p.DateGenerated.Before(start) {
			continue
		}
		key := validator.FormatPeriod(p.DateGenerated)
		totals[key] = totals[key].Add(p.NetSalary)
	}

	result := make([]payslip.MonthlyNetTotal, 0, len(totals))
	for period, total := range totals {
		result = append(result, payslip.MonthlyNetTotal{Period: period, NetTotal: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}

// AggregateByDepartment sums net pay per department, descending by total.
// Rows without a department land in the Unassigned bucket. Equal totals order
// by department name so the output is stable.
func AggregateByDepartment(rows []payslip.DepartmentNetRow) []payslip.DepartmentNetTotal {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		dept := UnassignedDepartment
		if row.Department != nil && *row.Department != "" {
			dept = *row.Department
		}
		totals[dept] = totals[dept].Add(row.NetSalary)
	}

	result := make([]payslip.DepartmentNetTotal, 0, len(totals))
	for dept, total := range totals {
		result = append(result, payslip.DepartmentNetTotal{Department: dept, NetTotal: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].NetTotal.Equal(result[j].NetTotal) {
			return result[i].NetTotal.GreaterThan(result[j].NetTotal)
		}
		return result[i].Department < result[j].Department
	})
	return result
}
