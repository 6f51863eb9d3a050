package payslip

import (
	"fmt"
	"sort"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
)

// recordActive reports whether an effective range [start, end] covers asOf.
// A nil end means the record is still open; end == asOf is inclusive, the
// record stays active through its last day.
func recordActive(start time.Time, end *time.Time, asOf time.Time) bool {
	if start.After(asOf) {
		return false
	}
	return end == nil || !end.Before(asOf)
}

// ResolveActivePayRecords returns the subset of records active as of the given
// date. Zero, one, or many may match.
func ResolveActivePayRecords(records []employee.PayRecord, asOf time.Time) []employee.PayRecord {
	var active []employee.PayRecord
	for _, r := range records {
		if recordActive(r.StartDate, r.EndDate, asOf) {
			active = append(active, r)
		}
	}
	return active
}

// ResolveCurrentSalary finds the salary record active as of the given date.
//
// At most one salary record per employee should be open at a time. When the
// data is inconsistent and several match, the record with the latest StartDate
// wins (ties broken by ID so the pick is deterministic) and a diagnostic is
// returned alongside it; the computation proceeds. Zero matches is a hard
// precondition failure: ErrNoActiveSalary.
func ResolveCurrentSalary(records []employee.SalaryRecord, asOf time.Time) (employee.SalaryRecord, []string, error) {
	var active []employee.SalaryRecord
	for _, r := range records {
		if recordActive(r.StartDate, r.EndDate, asOf) {
			active = append(active, r)
		}
	}

	switch len(active) {
	case 0:
		return employee.SalaryRecord{}, nil, payslip.ErrNoActiveSalary
	case 1:
		return active[0], nil, nil
	}

	sort.Slice(active, func(i, j int) bool {
		if !active[i].StartDate.Equal(active[j].StartDate) {
			return active[i].StartDate.After(active[j].StartDate)
		}
		return active[i].ID > active[j].ID
	})

	diag := fmt.Sprintf(
		"inconsistent record state: %d salary records active as of %s, using record %s (start %s)",
		len(active), asOf.Format("2006-01-02"), active[0].ID, active[0].StartDate.Format("2006-01-02"),
	)
	return active[0], []string{diag}, nil
}
