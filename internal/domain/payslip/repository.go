package payslip

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayslipRepository persists payslips. Create is append-only; the unique
// (employee_id, period) index is the only duplicate-generation guard and is
// surfaced as ErrPayslipAlreadyExists.
type PayslipRepository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	CountByEmployee(ctx context.Context, employeeID string) (int64, error)

	// GetGeneratedSince returns payslips with date_generated >= since,
	// for the month-window aggregation.
	GetGeneratedSince(ctx context.Context, since time.Time) ([]Payslip, error)

	// GetDepartmentRows joins payslips generated in [from, to) with their
	// employee's department.
	GetDepartmentRows(ctx context.Context, from, to time.Time) ([]DepartmentNetRow, error)

	// CountAndSumInRange returns the payslip count and net-salary sum for
	// payslips generated in [from, to).
	CountAndSumInRange(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error)
}
