package policy

import "context"

// PolicyService resolves and administers department policies.
type PolicyService interface {
	// Resolve returns the effective policy for a department, falling back to
	// system defaults when none is configured. The second return reports
	// whether a configured row backed the answer.
	Resolve(ctx context.Context, department Department) (DepartmentPolicy, bool, error)

	// List returns the effective policy for every department, defaults
	// filled in for departments without a row.
	List(ctx context.Context) ([]PolicyResponse, error)

	Get(ctx context.Context, department Department) (PolicyResponse, error)

	// Upsert creates or replaces a department policy. Master admin only;
	// the router enforces the role, the editor is recorded for audit.
	Upsert(ctx context.Context, req UpsertPolicyRequest, editorID string) (PolicyResponse, error)
}
