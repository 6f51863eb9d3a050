package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

// Create implements payslip.PayslipRepository. The unique (employee_id, period)
// index is the duplicate-generation guard.
func (p *payslipRepositoryImpl) Create(ctx context.Context, slip payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payslips (
			employee_id, period, month_label, gross_salary, deductions, net_salary,
			policy, diagnostics
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, period, month_label, gross_salary, deductions,
			net_salary, policy, diagnostics, date_generated
	`

	var created payslip.Payslip
	err := q.QueryRow(ctx, query,
		slip.EmployeeID, slip.Period, slip.MonthLabel, slip.GrossSalary,
		slip.Deductions, slip.NetSalary, slip.Policy, slip.Diagnostics,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Period, &created.MonthLabel,
		&created.GrossSalary, &created.Deductions, &created.NetSalary,
		&created.Policy, &created.Diagnostics, &created.DateGenerated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return payslip.Payslip{}, payslip.ErrPayslipAlreadyExists
		}
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

// GetByID implements payslip.PayslipRepository.
func (p *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.employee_id, p.period, p.month_label, p.gross_salary,
			p.deductions, p.net_salary, p.policy, p.diagnostics, p.date_generated,
			e.full_name, e.employee_code, e.department
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var found payslip.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EmployeeID, &found.Period, &found.MonthLabel,
		&found.GrossSalary, &found.Deductions, &found.NetSalary,
		&found.Policy, &found.Diagnostics, &found.DateGenerated,
		&found.EmployeeName, &found.EmployeeCode, &found.Department,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip by id: %w", err)
	}

	return found, nil
}

// List implements payslip.PayslipRepository. Newest payslips first.
func (p *payslipRepositoryImpl) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, int64, error) {
	q := GetQuerier(ctx, p.db)

	whereParts := []string{"1 = 1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		whereParts = append(whereParts, fmt.Sprintf("p.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Period != nil {
		whereParts = append(whereParts, fmt.Sprintf("p.period = $%d", argPos))
		args = append(args, *filter.Period)
		argPos++
	}

	where := strings.Join(whereParts, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payslips p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.period, p.month_label, p.gross_salary,
			p.deductions, p.net_salary, p.policy, p.diagnostics, p.date_generated,
			e.full_name, e.employee_code, e.department
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.date_generated DESC, p.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var slip payslip.Payslip
		err := rows.Scan(
			&slip.ID, &slip.EmployeeID, &slip.Period, &slip.MonthLabel,
			&slip.GrossSalary, &slip.Deductions, &slip.NetSalary,
			&slip.Policy, &slip.Diagnostics, &slip.DateGenerated,
			&slip.EmployeeName, &slip.EmployeeCode, &slip.Department,
		)
		if err != nil {
			return nil, 0, err
		}
		payslips = append(payslips, slip)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return payslips, totalCount, nil
}

// CountByEmployee implements payslip.PayslipRepository.
func (p *payslipRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, p.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payslips WHERE employee_id = $1`, employeeID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetGeneratedSince implements payslip.PayslipRepository.
func (p *payslipRepositoryImpl) GetGeneratedSince(ctx context.Context, since time.Time) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, period, month_label, gross_salary, deductions,
			net_salary, policy, diagnostics, date_generated
		FROM payslips
		WHERE date_generated >= $1
		ORDER BY date_generated ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get payslips since %s: %w", since.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var slip payslip.Payslip
		err := rows.Scan(
			&slip.ID, &slip.EmployeeID, &slip.Period, &slip.MonthLabel,
			&slip.GrossSalary, &slip.Deductions, &slip.NetSalary,
			&slip.Policy, &slip.Diagnostics, &slip.DateGenerated,
		)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, slip)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}

// GetDepartmentRows implements payslip.PayslipRepository.
func (p *payslipRepositoryImpl) GetDepartmentRows(ctx context.Context, from, to time.Time) ([]payslip.DepartmentNetRow, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT e.department, p.net_salary
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.date_generated >= $1 AND p.date_generated < $2
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get department rows: %w", err)
	}
	defer rows.Close()

	var result []payslip.DepartmentNetRow
	for rows.Next() {
		var row payslip.DepartmentNetRow
		if err := rows.Scan(&row.Department, &row.NetSalary); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountAndSumInRange implements payslip.PayslipRepository.
func (p *payslipRepositoryImpl) CountAndSumInRange(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(net_salary), 0)
		FROM payslips
		WHERE date_generated >= $1 AND date_generated < $2
	`

	var count int64
	var netTotal decimal.Decimal
	err := q.QueryRow(ctx, query, from, to).Scan(&count, &netTotal)
	if err != nil {
		return 0, decimal.Decimal{}, fmt.Errorf("failed to summarize payslips: %w", err)
	}

	return count, netTotal, nil
}
