package employee

import "context"

// EmployeeRepository reads identity records kept in sync by the external
// identity service. The engine never writes to it.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetApprover resolves the direct approver of the given employee.
	// Returns ErrApproverNotFound when none is configured.
	GetApprover(ctx context.Context, employeeID string) (Employee, error)

	// ListByRole returns active employees holding the given role. Used to
	// validate escalation targets against the ladder.
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
}
