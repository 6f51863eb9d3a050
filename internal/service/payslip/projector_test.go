package payslip

import (
	"testing"
	"time"

	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	position := "Backend Engineer"
	dept := "Engineering"
	emp := employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-001",
		FullName:     "Jane Smith",
		Department:   &dept,
		Position:     &position,
	}
	slip := payslip.Payslip{
		ID:            "ps-1",
		EmployeeID:    "emp-1",
		Period:        "2024-06",
		MonthLabel:    "June 2024",
		GrossSalary:   decimal.RequireFromString("52000"),
		Deductions:    decimal.RequireFromString("500.5"),
		NetSalary:     decimal.RequireFromString("51499.5"),
		DateGenerated: time.Date(2024, time.June, 30, 10, 30, 0, 0, time.UTC),
	}

	view := Project(slip, emp)

	assert.Equal(t, "ps-1", view.PayslipID)
	assert.Equal(t, "Jane Smith", view.EmployeeName)
	assert.Equal(t, "EMP-001", view.EmployeeCode)
	assert.Equal(t, "Engineering", view.Department)
	assert.Equal(t, &position, view.Position)
	assert.Equal(t, "June 2024", view.MonthLabel)

	// Money is always rendered with exactly two decimals.
	assert.Equal(t, "52000.00", view.GrossSalary)
	assert.Equal(t, "500.50", view.Deductions)
	assert.Equal(t, "51499.50", view.NetSalary)
	assert.Equal(t, "2024-06-30", view.DateGenerated)
}

func TestProject_MissingDepartmentFallsBackToUnassigned(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-001",
		FullName:     "Jane Smith",
	}
	slip := payslip.Payslip{ID: "ps-1", EmployeeID: "emp-1"}

	view := Project(slip, emp)

	assert.Equal(t, UnassignedDepartment, view.Department)
	assert.Nil(t, view.Position)
}
