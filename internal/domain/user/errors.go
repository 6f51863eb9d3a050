package user

import "errors"

var (
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrFinanceAccessRequired = errors.New("finance or admin access required")
	ErrSelfAccessOnly        = errors.New("employees may only access their own records")
)
