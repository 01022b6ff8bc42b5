package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrApproverNotFound = errors.New("no direct approver configured for employee")
)
