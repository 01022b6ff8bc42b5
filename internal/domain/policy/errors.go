package policy

import "errors"

var (
	ErrPolicyNotFound    = errors.New("department policy not found")
	ErrUnknownDepartment = errors.New("unknown department")
)
