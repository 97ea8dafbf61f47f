package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("an employee with this email already exists")
	ErrFutureHireDate   = errors.New("hire date cannot be in the future")
)
