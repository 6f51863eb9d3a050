package employee

import "context"

// EmployeeService defines business logic for employee master data
type EmployeeService interface {
	// CreateEmployee creates a new employee; an initial salary record is opened
	// in the same transaction when basic_salary is provided (finance+ only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves the full employee read model (finance+ OR same employee)
	GetEmployee(ctx context.Context, id string) (EmployeeDetailResponse, error)

	// ListEmployees lists active employees with search/filter/sort (finance+ only)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// UpdateEmployee partially updates an employee; a basic_salary change closes
	// the open salary record and opens a new one (finance+ only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee (finance+ only)
	DeleteEmployee(ctx context.Context, id string) error

	// GetOptions returns form dropdown values and headcount statistics (finance+ only)
	GetOptions(ctx context.Context) (EmployeeOptionsResponse, error)

	// OpenPayRecord opens an effective-dated allowance or deduction record
	OpenPayRecord(ctx context.Context, req OpenPayRecordRequest) (PayRecordResponse, error)

	// ClosePayRecord sets the end date of an open allowance or deduction record
	ClosePayRecord(ctx context.Context, req ClosePayRecordRequest) error

	// ListPayRecords lists an employee's allowance or deduction records
	ListPayRecords(ctx context.Context, employeeID string, kind RecordKind, activeOnly bool) ([]PayRecordResponse, error)
}
