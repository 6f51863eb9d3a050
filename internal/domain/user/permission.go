package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionPayslipViewOwn Permission = "payslip.view_own"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Payroll Management
	PermissionPayslipGenerate Permission = "payslip.generate"
	PermissionPayslipViewAll  Permission = "payslip.view_all"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionPayslipViewOwn,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayslipGenerate,
		PermissionPayslipViewAll,
		PermissionReportsView,
		PermissionUserManage,
	},
	RoleFinance: {
		PermissionViewOwnProfile,
		PermissionPayslipViewOwn,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayslipGenerate,
		PermissionPayslipViewAll,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionPayslipViewOwn,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
