package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
)

type PayslipServiceImpl struct {
	payslipRepo   payslip.PayslipRepository
	employeeRepo  employee.EmployeeRepository
	recordRepo    employee.RecordRepository
	calculator    *Calculator
	defaultPolicy payslip.Policy
	logger        *slog.Logger
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	recordRepo employee.RecordRepository,
	calculator *Calculator,
	defaultPolicy payslip.Policy,
	logger *slog.Logger,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo:   payslipRepo,
		employeeRepo:  employeeRepo,
		recordRepo:    recordRepo,
		calculator:    calculator,
		defaultPolicy: defaultPolicy,
		logger:        logger,
	}
}

// claimsFromContext extracts the authenticated caller from the JWT context.
func claimsFromContext(ctx context.Context) (userID string, role user.Role, employeeID *string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	if empID, ok := claims["employee_id"].(string); ok && empID != "" {
		employeeID = &empID
	}

	return userID, user.Role(roleStr), employeeID, nil
}

func (s *PayslipServiceImpl) GeneratePayslip(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	now := time.Now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if req.Period != nil {
		periodStart, err = validator.ParsePeriod(*req.Period)
		if err != nil {
			return payslip.PayslipResponse{}, err
		}
	}

	monthLabel := periodStart.Format("January 2006")
	if req.MonthLabel != nil {
		monthLabel = *req.MonthLabel
	}

	policy := s.defaultPolicy
	if req.Policy != nil {
		policy = payslip.Policy(*req.Policy)
	}

	salaries, err := s.recordRepo.GetSalaryRecords(ctx, emp.ID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	allowances, err := s.recordRepo.GetPayRecords(ctx, emp.ID, employee.RecordKindAllowance)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	deductions, err := s.recordRepo.GetPayRecords(ctx, emp.ID, employee.RecordKindDeduction)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	// Resolve against the last day of the period so records opened mid-month
	// count for that month's payslip.
	_, periodEnd := PeriodBounds(periodStart)
	asOf := periodEnd.AddDate(0, 0, -1)
	if asOf.After(now) {
		asOf = now
	}

	computation, err := s.calculator.Compute(CalculatorInput{
		Salaries:   salaries,
		Allowances: allowances,
		Deductions: deductions,
		AsOf:       asOf,
	}, policy)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	for _, diag := range computation.Diagnostics {
		s.logger.Warn("payslip computation diagnostic",
			slog.String("employee_id", emp.ID),
			slog.String("period", validator.FormatPeriod(periodStart)),
			slog.String("diagnostic", diag),
		)
	}

	created, err := s.payslipRepo.Create(ctx, payslip.Payslip{
		EmployeeID:  emp.ID,
		Period:      validator.FormatPeriod(periodStart),
		MonthLabel:  monthLabel,
		GrossSalary: computation.GrossSalary,
		Deductions:  computation.Deductions,
		NetSalary:   computation.NetSalary,
		Policy:      policy,
		Diagnostics: computation.Diagnostics,
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode
	created.Department = emp.Department

	return mapToPayslipResponse(created), nil
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.getScopedPayslip(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapToPayslipResponse(p), nil
}

func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	_, role, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	// Employees only ever see their own payslips, whatever the filter says.
	if role == user.RoleEmployee {
		if employeeID == nil {
			return payslip.ListPayslipResponse{}, employee.ErrEmployeeNotFound
		}
		filter.EmployeeID = employeeID
	}

	records, totalCount, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	data := make([]payslip.PayslipResponse, 0, len(records))
	for _, p := range records {
		data = append(data, mapToPayslipResponse(p))
	}

	return payslip.ListPayslipResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayslipServiceImpl) GetPayslipView(ctx context.Context, id string) (payslip.PayslipView, error) {
	p, err := s.getScopedPayslip(ctx, id)
	if err != nil {
		return payslip.PayslipView{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return payslip.PayslipView{}, err
	}

	return Project(p, emp), nil
}

func (s *PayslipServiceImpl) MonthlyTotals(ctx context.Context, windowMonths int) ([]payslip.MonthlyNetTotal, error) {
	now := time.Now().UTC()
	since := MonthWindowStart(now, windowMonths)

	payslips, err := s.payslipRepo.GetGeneratedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return AggregateByMonth(payslips, windowMonths, now), nil
}

func (s *PayslipServiceImpl) DepartmentTotals(ctx context.Context, period string) ([]payslip.DepartmentNetTotal, error) {
	periodStart, err := validator.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	from, to := PeriodBounds(periodStart)
	rows, err := s.payslipRepo.GetDepartmentRows(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return AggregateByDepartment(rows), nil
}

func (s *PayslipServiceImpl) Summary(ctx context.Context, period string) (payslip.PeriodSummary, error) {
	periodStart, err := validator.ParsePeriod(period)
	if err != nil {
		return payslip.PeriodSummary{}, err
	}

	from, to := PeriodBounds(periodStart)
	count, netTotal, err := s.payslipRepo.CountAndSumInRange(ctx, from, to)
	if err != nil {
		return payslip.PeriodSummary{}, err
	}

	totalEmployees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return payslip.PeriodSummary{}, err
	}

	return payslip.PeriodSummary{
		Period:         validator.FormatPeriod(periodStart),
		TotalEmployees: totalEmployees,
		TotalPayslips:  count,
		PeriodNetTotal: netTotal,
	}, nil
}

// getScopedPayslip fetches a payslip and enforces self-access for the
// employee role.
func (s *PayslipServiceImpl) getScopedPayslip(ctx context.Context, id string) (payslip.Payslip, error) {
	_, role, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return payslip.Payslip{}, err
	}

	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.Payslip{}, err
	}

	if role == user.RoleEmployee {
		if employeeID == nil || *employeeID != p.EmployeeID {
			return payslip.Payslip{}, user.ErrSelfAccessOnly
		}
	}

	return p, nil
}

func mapToPayslipResponse(p payslip.Payslip) payslip.PayslipResponse {
	employeeName := ""
	employeeCode := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		employeeCode = *p.EmployeeCode
	}

	return payslip.PayslipResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  employeeName,
		EmployeeCode:  employeeCode,
		Department:    p.Department,
		Period:        p.Period,
		MonthLabel:    p.MonthLabel,
		GrossSalary:   p.GrossSalary,
		Deductions:    p.Deductions,
		NetSalary:     p.NetSalary,
		Policy:        string(p.Policy),
		Diagnostics:   p.Diagnostics,
		DateGenerated: p.DateGenerated.Format(time.RFC3339),
	}
}
