package response

import (
	"errors"
	"net/http"

	"github.com/paylane/payroll-backend-go/internal/domain/auth"
	"github.com/paylane/payroll-backend-go/internal/domain/employee"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/paylane/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrFinanceAccessRequired):
		Forbidden(w, "Finance or admin access required")
	case errors.Is(err, user.ErrSelfAccessOnly):
		Forbidden(w, "You may only access your own records")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code or email already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrRecordNotFound):
		NotFound(w, "Pay record not found")
	case errors.Is(err, employee.ErrRecordAlreadyEnded):
		Conflict(w, "Pay record already ended")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already generated for this employee and period")
	case errors.Is(err, payslip.ErrNoActiveSalary):
		BadRequest(w, "Employee has no active salary record for the period", nil)
	case errors.Is(err, payslip.ErrInvalidPolicy):
		BadRequest(w, "Invalid payslip policy", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
