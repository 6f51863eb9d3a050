package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access
	RoleFinance  Role = "finance"  // Manages employees and payroll
	RoleEmployee Role = "employee" // Self-access only
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManagePayroll checks if user can manage employees and generate payslips
func (u *User) CanManagePayroll() bool {
	return u.Role == RoleAdmin || u.Role == RoleFinance
}
