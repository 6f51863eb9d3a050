package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) employee.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// OpenSalary implements employee.RecordRepository.
func (r *recordRepositoryImpl) OpenSalary(ctx context.Context, record employee.SalaryRecord) (employee.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (employee_id, basic_salary, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, basic_salary, start_date, end_date, created_at
	`

	var created employee.SalaryRecord
	err := q.QueryRow(ctx, query, record.EmployeeID, record.BasicSalary, record.StartDate, record.EndDate).
		Scan(&created.ID, &created.EmployeeID, &created.BasicSalary, &created.StartDate, &created.EndDate, &created.CreatedAt)
	if err != nil {
		return employee.SalaryRecord{}, fmt.Errorf("failed to open salary record: %w", err)
	}

	return created, nil
}

// CloseOpenSalary implements employee.RecordRepository. Closing when no record
// is open is a no-op; the caller decides whether that matters.
func (r *recordRepositoryImpl) CloseOpenSalary(ctx context.Context, employeeID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET end_date = $1
		WHERE employee_id = $2 AND end_date IS NULL
	`

	_, err := q.Exec(ctx, query, endDate, employeeID)
	if err != nil {
		return fmt.Errorf("failed to close open salary record: %w", err)
	}
	return nil
}

// GetSalaryRecords implements employee.RecordRepository. Records come back
// ascending by start date, oldest version first.
func (r *recordRepositoryImpl) GetSalaryRecords(ctx context.Context, employeeID string) ([]employee.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, start_date, end_date, created_at
		FROM salary_records
		WHERE employee_id = $1
		ORDER BY start_date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary records: %w", err)
	}
	defer rows.Close()

	var records []employee.SalaryRecord
	for rows.Next() {
		var rec employee.SalaryRecord
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.BasicSalary, &rec.StartDate, &rec.EndDate, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// OpenPayRecord implements employee.RecordRepository.
func (r *recordRepositoryImpl) OpenPayRecord(ctx context.Context, record employee.PayRecord) (employee.PayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_records (employee_id, kind, name, amount, is_fixed, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, kind, name, amount, is_fixed, start_date, end_date, created_at
	`

	var created employee.PayRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Kind, record.Name, record.Amount,
		record.IsFixed, record.StartDate, record.EndDate,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Kind, &created.Name, &created.Amount,
		&created.IsFixed, &created.StartDate, &created.EndDate, &created.CreatedAt,
	)
	if err != nil {
		return employee.PayRecord{}, fmt.Errorf("failed to open pay record: %w", err)
	}

	return created, nil
}

// ClosePayRecord implements employee.RecordRepository.
func (r *recordRepositoryImpl) ClosePayRecord(ctx context.Context, employeeID, recordID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_records
		SET end_date = $1
		WHERE id = $2 AND employee_id = $3 AND end_date IS NULL
		RETURNING id
	`

	var closedID string
	err := q.QueryRow(ctx, query, endDate, recordID, employeeID).Scan(&closedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return r.classifyCloseFailure(ctx, employeeID, recordID)
		}
		return fmt.Errorf("failed to close pay record: %w", err)
	}

	return nil
}

// classifyCloseFailure distinguishes "no such record" from "already ended" so
// the handler can answer 404 vs 409.
func (r *recordRepositoryImpl) classifyCloseFailure(ctx context.Context, employeeID, recordID string) error {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM pay_records WHERE id = $1 AND employee_id = $2)`,
		recordID, employeeID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check pay record: %w", err)
	}
	if !exists {
		return employee.ErrRecordNotFound
	}
	return employee.ErrRecordAlreadyEnded
}

// GetPayRecords implements employee.RecordRepository.
func (r *recordRepositoryImpl) GetPayRecords(ctx context.Context, employeeID string, kind employee.RecordKind) ([]employee.PayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, name, amount, is_fixed, start_date, end_date, created_at
		FROM pay_records
		WHERE employee_id = $1 AND kind = $2
		ORDER BY start_date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay records: %w", err)
	}
	defer rows.Close()

	var records []employee.PayRecord
	for rows.Next() {
		var rec employee.PayRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Kind, &rec.Name, &rec.Amount,
			&rec.IsFixed, &rec.StartDate, &rec.EndDate, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
