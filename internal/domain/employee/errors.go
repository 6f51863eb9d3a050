package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrRecordNotFound     = errors.New("pay record not found")
	ErrRecordAlreadyEnded = errors.New("pay record already ended")
)
