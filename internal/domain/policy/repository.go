package policy

import "context"

// PolicyRepository persists department policies. One row per department.
type PolicyRepository interface {
	// GetByDepartment returns the configured policy for the department.
	// Returns ErrPolicyNotFound when no row exists.
	GetByDepartment(ctx context.Context, department Department) (DepartmentPolicy, error)

	// List returns every configured policy.
	List(ctx context.Context) ([]DepartmentPolicy, error)

	// Upsert creates or replaces the department's policy row.
	Upsert(ctx context.Context, p DepartmentPolicy) (DepartmentPolicy, error)
}
