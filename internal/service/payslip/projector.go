package payslip

import (
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
)

// Project merges a payslip with its employee's display fields into the view
// the external PDF/HTML renderer consumes. Monetary amounts are formatted as
// fixed two-decimal strings; nothing is mutated or stored.
func Project(p payslip.Payslip, emp employee.Employee) payslip.PayslipView {
	dept := UnassignedDepartment
	if emp.Department != nil && *emp.Department != "" {
		dept = *emp.Department
	}

	return payslip.PayslipView{
		PayslipID:     p.ID,
		EmployeeName:  emp.FullName,
		EmployeeCode:  emp.EmployeeCode,
		Department:    dept,
		Position:      emp.Position,
		Period:        p.Period,
		MonthLabel:    p.MonthLabel,
		GrossSalary:   p.GrossSalary.StringFixed(2),
		Deductions:    p.Deductions.StringFixed(2),
		NetSalary:     p.NetSalary.StringFixed(2),
		DateGenerated: p.DateGenerated.Format("2006-01-02"),
	}
}
