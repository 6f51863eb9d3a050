package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
	"github.com/paylane/payroll-backend-go/internal/repository/postgresql"
	payslipService "github.com/paylane/payroll-backend-go/internal/service/payslip"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	recordRepo   employee.RecordRepository
	payslipRepo  payslip.PayslipRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	recordRepo employee.RecordRepository,
	payslipRepo payslip.PayslipRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		payslipRepo:  payslipRepo,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	newEmployee := employee.Employee{
		EmployeeCode:      req.EmployeeCode,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Department:        req.Department,
		Position:          req.Position,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		IsActive:          true,
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		newEmployee.HireDate = &hireDate
	}
	if req.EmploymentType != nil {
		et := employee.EmploymentType(*req.EmploymentType)
		newEmployee.EmploymentType = &et
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}

		// The first salary record opens the day the employee is created.
		if req.BasicSalary != nil {
			_, err = s.recordRepo.OpenSalary(txCtx, employee.SalaryRecord{
				EmployeeID:  created.ID,
				BasicSalary: *req.BasicSalary,
				StartDate:   today(),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created, req.BasicSalary), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	if err := s.checkSelfAccess(ctx, id); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	salaries, err := s.recordRepo.GetSalaryRecords(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	allowances, err := s.recordRepo.GetPayRecords(ctx, id, employee.RecordKindAllowance)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	deductions, err := s.recordRepo.GetPayRecords(ctx, id, employee.RecordKindDeduction)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	payslipCount, err := s.payslipRepo.CountByEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	now := today()
	detail := employee.EmployeeDetailResponse{
		EmployeeResponse: mapToEmployeeResponse(emp, nil),
		SalaryHistory:    []employee.SalaryRecordResponse{},
		Allowances:       []employee.PayRecordResponse{},
		Deductions:       []employee.PayRecordResponse{},
		PayslipCount:     payslipCount,
	}

	if current, _, err := payslipService.ResolveCurrentSalary(salaries, now); err == nil {
		resp := mapToSalaryResponse(current)
		detail.CurrentSalary = &resp
		detail.BasicSalary = &current.BasicSalary
	}

	// Last 12 salary versions, newest first.
	for i := len(salaries) - 1; i >= 0 && len(detail.SalaryHistory) < 12; i-- {
		detail.SalaryHistory = append(detail.SalaryHistory, mapToSalaryResponse(salaries[i]))
	}

	activeAllowances := payslipService.ResolveActivePayRecords(allowances, now)
	activeDeductions := payslipService.ResolveActivePayRecords(deductions, now)
	for _, r := range activeAllowances {
		detail.Allowances = append(detail.Allowances, mapToPayRecordResponse(r))
	}
	for _, r := range activeDeductions {
		detail.Deductions = append(detail.Deductions, mapToPayRecordResponse(r))
	}

	totalAllowances := sumFixedAmounts(activeAllowances)
	totalDeductions := sumFixedAmounts(activeDeductions)
	detail.Summary = employee.EmployeeRecordSummary{
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		NetAdditions:    totalAllowances.Sub(totalDeductions),
		YearsOfService:  yearsOfService(emp.HireDate, now),
	}

	return detail, nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToEmployeeResponse(emp, nil))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employeeRepo.Update(txCtx, req); err != nil {
			return err
		}

		if req.BasicSalary != nil {
			return s.changeSalary(txCtx, req.ID, *req.BasicSalary)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(updated, nil), nil
}

// changeSalary closes the open salary record and opens a new one the same day.
// Setting the same amount again is a no-op so repeated updates do not pile up
// one-day salary versions.
func (s *EmployeeServiceImpl) changeSalary(ctx context.Context, employeeID string, basicSalary decimal.Decimal) error {
	salaries, err := s.recordRepo.GetSalaryRecords(ctx, employeeID)
	if err != nil {
		return err
	}

	now := today()
	current, _, err := payslipService.ResolveCurrentSalary(salaries, now)
	if err == nil && current.BasicSalary.Equal(basicSalary) {
		return nil
	}

	if err == nil {
		if err := s.recordRepo.CloseOpenSalary(ctx, employeeID, now); err != nil {
			return err
		}
	}

	_, err = s.recordRepo.OpenSalary(ctx, employee.SalaryRecord{
		EmployeeID:  employeeID,
		BasicSalary: basicSalary,
		StartDate:   now,
	})
	return err
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.SoftDelete(ctx, id)
}

func (s *EmployeeServiceImpl) GetOptions(ctx context.Context) (employee.EmployeeOptionsResponse, error) {
	return s.employeeRepo.Options(ctx)
}

func (s *EmployeeServiceImpl) OpenPayRecord(ctx context.Context, req employee.OpenPayRecordRequest) (employee.PayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PayRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return employee.PayRecordResponse{}, err
	}

	startDate := today()
	if req.StartDate != nil {
		startDate, _ = validator.IsValidDate(*req.StartDate)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		endDate = &parsed
	}
	isFixed := true
	if req.IsFixed != nil {
		isFixed = *req.IsFixed
	}

	created, err := s.recordRepo.OpenPayRecord(ctx, employee.PayRecord{
		EmployeeID: req.EmployeeID,
		Kind:       req.Kind,
		Name:       req.Name,
		Amount:     req.Amount,
		IsFixed:    isFixed,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return employee.PayRecordResponse{}, err
	}

	return mapToPayRecordResponse(created), nil
}

func (s *EmployeeServiceImpl) ClosePayRecord(ctx context.Context, req employee.ClosePayRecordRequest) error {
	endDate := today()
	if req.EndDate != nil {
		parsed, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return validator.ValidationErrors{{Field: "end_date", Message: "must use YYYY-MM-DD format"}}
		}
		endDate = parsed
	}
	return s.recordRepo.ClosePayRecord(ctx, req.EmployeeID, req.RecordID, endDate)
}

func (s *EmployeeServiceImpl) ListPayRecords(ctx context.Context, employeeID string, kind employee.RecordKind, activeOnly bool) ([]employee.PayRecordResponse, error) {
	if err := s.checkSelfAccess(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetPayRecords(ctx, employeeID, kind)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		records = payslipService.ResolveActivePayRecords(records, today())
	}

	result := make([]employee.PayRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToPayRecordResponse(r))
	}
	return result, nil
}

// checkSelfAccess lets finance/admin through and restricts the employee role
// to its own employee id.
func (s *EmployeeServiceImpl) checkSelfAccess(ctx context.Context, employeeID string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	roleStr, _ := claims["role"].(string)
	if user.Role(roleStr) != user.RoleEmployee {
		return nil
	}

	claimEmployeeID, _ := claims["employee_id"].(string)
	if claimEmployeeID == "" || claimEmployeeID != employeeID {
		return user.ErrSelfAccessOnly
	}
	return nil
}

// ========== HELPERS ==========

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func yearsOfService(hireDate *time.Time, now time.Time) int {
	if hireDate == nil {
		return 0
	}
	return int(now.Sub(*hireDate).Hours() / 24 / 365)
}

func sumFixedAmounts(records []employee.PayRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.IsFixed {
			total = total.Add(r.Amount)
		}
	}
	return total
}

func mapToEmployeeResponse(e employee.Employee, basicSalary *decimal.Decimal) employee.EmployeeResponse {
	var hireDate *string
	if e.HireDate != nil {
		str := e.HireDate.Format("2006-01-02")
		hireDate = &str
	}
	var employmentType *string
	if e.EmploymentType != nil {
		str := string(*e.EmploymentType)
		employmentType = &str
	}

	return employee.EmployeeResponse{
		ID:                e.ID,
		EmployeeCode:      e.EmployeeCode,
		FullName:          e.FullName,
		Email:             e.Email,
		Phone:             e.Phone,
		Department:        e.Department,
		Position:          e.Position,
		BankName:          e.BankName,
		BankAccountNumber: e.BankAccountNumber,
		HireDate:          hireDate,
		EmploymentType:    employmentType,
		IsActive:          e.IsActive,
		BasicSalary:       basicSalary,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func mapToSalaryResponse(r employee.SalaryRecord) employee.SalaryRecordResponse {
	var endDate *string
	if r.EndDate != nil {
		str := r.EndDate.Format("2006-01-02")
		endDate = &str
	}
	return employee.SalaryRecordResponse{
		ID:          r.ID,
		BasicSalary: r.BasicSalary,
		StartDate:   r.StartDate.Format("2006-01-02"),
		EndDate:     endDate,
	}
}

func mapToPayRecordResponse(r employee.PayRecord) employee.PayRecordResponse {
	var endDate *string
	if r.EndDate != nil {
		str := r.EndDate.Format("2006-01-02")
		endDate = &str
	}
	return employee.PayRecordResponse{
		ID:        r.ID,
		Kind:      string(r.Kind),
		Name:      r.Name,
		Amount:    r.Amount,
		IsFixed:   r.IsFixed,
		StartDate: r.StartDate.Format("2006-01-02"),
		EndDate:   endDate,
	}
}
