package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
)

const employeeColumns = `id, user_id, employee_code, full_name, email, phone, department, position,
		bank_name, bank_account_number, hire_date, employment_type, is_active, created_at, updated_at`

// sortableEmployeeColumns whitelists the columns the list endpoint may order by.
var sortableEmployeeColumns = map[string]string{
	"full_name":     "full_name",
	"employee_code": "employee_code",
	"department":    "department",
	"hire_date":     "hire_date",
	"created_at":    "created_at",
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FullName, &emp.Email,
		&emp.Phone, &emp.Department, &emp.Position, &emp.BankName, &emp.BankAccountNumber,
		&emp.HireDate, &emp.EmploymentType, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND is_active = TRUE
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1 AND is_active = TRUE
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			user_id, employee_code, full_name, email, phone, department, position,
			bank_name, bank_account_number, hire_date, employment_type, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12
		)
		RETURNING ` + employeeColumns + `
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Email,
		newEmployee.Phone, newEmployee.Department, newEmployee.Position,
		newEmployee.BankName, newEmployee.BankAccountNumber, newEmployee.HireDate,
		newEmployee.EmploymentType, newEmployee.IsActive,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE (employee_code = $1 OR email = $2) AND is_active = TRUE
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeCode, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Update implements employee.EmployeeRepository. Only the fields present in the
// request are written; basic_salary changes go through the record repository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.BankName != nil {
		addSet("bank_name", *req.BankName)
	}
	if req.BankAccountNumber != nil {
		addSet("bank_account_number", *req.BankAccountNumber)
	}
	if req.HireDate != nil {
		// Format is validated upstream.
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return fmt.Errorf("invalid hire_date %q: %w", *req.HireDate, err)
		}
		addSet("hire_date", hireDate)
	}
	if req.EmploymentType != nil {
		addSet("employment_type", *req.EmploymentType)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND is_active = TRUE
		RETURNING id
	`, strings.Join(setParts, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to soft delete employee with id %s: %w", id, err)
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	whereParts := []string{"is_active = TRUE"}
	args := []interface{}{}
	argPos := 1

	addWhere := func(condition string, value interface{}) {
		whereParts = append(whereParts, fmt.Sprintf(condition, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.Search != "" {
		addWhere("(full_name ILIKE $%[1]d OR employee_code ILIKE $%[1]d OR email ILIKE $%[1]d)", "%"+filter.Search+"%")
	}
	if filter.Department != nil {
		addWhere("department = $%d", *filter.Department)
	}
	if filter.EmploymentType != nil {
		addWhere("employment_type = $%d", *filter.EmploymentType)
	}
	if filter.HireDateFrom != nil {
		addWhere("hire_date >= $%d", *filter.HireDateFrom)
	}
	if filter.HireDateTo != nil {
		addWhere("hire_date <= $%d", *filter.HireDateTo)
	}

	where := strings.Join(whereParts, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	orderBy := "full_name"
	if col, ok := sortableEmployeeColumns[filter.SortBy]; ok {
		orderBy = col
	}
	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, orderBy, direction, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, totalCount, nil
}

// CountActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Options implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Options(ctx context.Context) (employee.EmployeeOptionsResponse, error) {
	q := GetQuerier(ctx, e.db)

	options := employee.EmployeeOptionsResponse{
		Departments:      []string{},
		EmploymentTypes:  []string{},
		ByDepartment:     []employee.DepartmentCount{},
		ByEmploymentType: []employee.EmploymentTypeCount{},
	}

	deptQuery := `
		SELECT department, COUNT(*)
		FROM employees
		WHERE is_active = TRUE AND department IS NOT NULL AND department <> ''
		GROUP BY department
		ORDER BY department
	`
	rows, err := q.Query(ctx, deptQuery)
	if err != nil {
		return employee.EmployeeOptionsResponse{}, fmt.Errorf("failed to get department options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc employee.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return employee.EmployeeOptionsResponse{}, err
		}
		options.Departments = append(options.Departments, dc.Department)
		options.ByDepartment = append(options.ByDepartment, dc)
	}
	if err = rows.Err(); err != nil {
		return employee.EmployeeOptionsResponse{}, err
	}

	typeQuery := `
		SELECT employment_type, COUNT(*)
		FROM employees
		WHERE is_active = TRUE AND employment_type IS NOT NULL
		GROUP BY employment_type
		ORDER BY employment_type
	`
	typeRows, err := q.Query(ctx, typeQuery)
	if err != nil {
		return employee.EmployeeOptionsResponse{}, fmt.Errorf("failed to get employment type options: %w", err)
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var tc employee.EmploymentTypeCount
		if err := typeRows.Scan(&tc.EmploymentType, &tc.Count); err != nil {
			return employee.EmployeeOptionsResponse{}, err
		}
		options.EmploymentTypes = append(options.EmploymentTypes, tc.EmploymentType)
		options.ByEmploymentType = append(options.ByEmploymentType, tc)
	}
	if err = typeRows.Err(); err != nil {
		return employee.EmployeeOptionsResponse{}, err
	}

	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&options.TotalEmployees); err != nil {
		return employee.EmployeeOptionsResponse{}, err
	}

	return options, nil
}
