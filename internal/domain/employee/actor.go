package employee

import "github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"

// Actor is the authenticated caller as asserted by the identity provider's
// token claims. The engine trusts it without re-verifying credentials.
type Actor struct {
	EmployeeID string
	Name       string
	Department policy.Department
	Role       Role
}
