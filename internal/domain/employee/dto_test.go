package employee

import (
	"testing"

	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeCode: "EMP-001",
		FullName:     "Jane Smith",
		Email:        "jane@example.com",
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_RequiredFields(t *testing.T) {
	req := CreateEmployeeRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "employee_code")
	assert.Contains(t, fields, "email")
}

func TestCreateEmployeeRequest_InvalidEmail(t *testing.T) {
	req := validCreateRequest()
	req.Email = "not-an-email"

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
}

func TestCreateEmployeeRequest_FutureHireDate(t *testing.T) {
	req := validCreateRequest()
	future := "2099-01-01"
	req.HireDate = &future

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "hire_date")
}

func TestCreateEmployeeRequest_UnknownEmploymentType(t *testing.T) {
	req := validCreateRequest()
	et := "freelance"
	req.EmploymentType = &et

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "employment_type")
}

func TestCreateEmployeeRequest_NegativeSalary(t *testing.T) {
	req := validCreateRequest()
	negative := decimal.RequireFromString("-1")
	req.BasicSalary = &negative

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "basic_salary")
}

func TestUpdateEmployeeRequest_PartialUpdateValid(t *testing.T) {
	name := "New Name"
	req := UpdateEmployeeRequest{ID: "emp-1", FullName: &name}
	assert.NoError(t, req.Validate())

	// Empty struct is also valid: nothing to change.
	empty := UpdateEmployeeRequest{ID: "emp-1"}
	assert.NoError(t, empty.Validate())
}

func TestUpdateEmployeeRequest_EmptyNameRejected(t *testing.T) {
	blank := "   "
	req := UpdateEmployeeRequest{ID: "emp-1", FullName: &blank}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "full_name")
}

func TestOpenPayRecordRequest_Validate(t *testing.T) {
	req := OpenPayRecordRequest{
		EmployeeID: "emp-1",
		Kind:       RecordKindAllowance,
		Name:       "Transport",
		Amount:     decimal.RequireFromString("150"),
	}
	assert.NoError(t, req.Validate())

	req.Name = ""
	req.Amount = decimal.RequireFromString("-1")
	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "amount")
}
