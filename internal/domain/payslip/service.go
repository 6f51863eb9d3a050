package payslip

import "context"

// PayslipService defines business logic for payslip generation and reporting
type PayslipService interface {
	// GeneratePayslip computes and appends one payslip for the employee and
	// period (finance+ only). Conflicts when one already exists for the period.
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)

	// GetPayslip retrieves a payslip (finance+ OR the owning employee)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)

	// ListPayslips lists payslips; role employee is scoped to its own records
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)

	// GetPayslipView builds the presentation record for the external renderer
	GetPayslipView(ctx context.Context, id string) (PayslipView, error)

	// MonthlyTotals aggregates net pay by calendar month over a trailing window
	MonthlyTotals(ctx context.Context, windowMonths int) ([]MonthlyNetTotal, error)

	// DepartmentTotals aggregates net pay by department for one period
	DepartmentTotals(ctx context.Context, period string) ([]DepartmentNetTotal, error)

	// Summary reports employee/payslip counts and the net total for one period
	Summary(ctx context.Context, period string) (PeriodSummary, error)
}
