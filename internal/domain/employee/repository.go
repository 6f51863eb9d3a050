package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	CountActive(ctx context.Context) (int64, error)
	Options(ctx context.Context) (EmployeeOptionsResponse, error)
}

// RecordRepository manages the effective-dated salary and allowance/deduction
// records an employee owns. Salary records are append-only: CloseOpenSalary and
// OpenSalary run in the caller's transaction so a change never leaves two open
// rows behind.
type RecordRepository interface {
	OpenSalary(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	CloseOpenSalary(ctx context.Context, employeeID string, endDate time.Time) error
	GetSalaryRecords(ctx context.Context, employeeID string) ([]SalaryRecord, error)

	OpenPayRecord(ctx context.Context, record PayRecord) (PayRecord, error)
	ClosePayRecord(ctx context.Context, employeeID, recordID string, endDate time.Time) error
	GetPayRecords(ctx context.Context, employeeID string, kind RecordKind) ([]PayRecord, error)
}
