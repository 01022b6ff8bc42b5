package leave

import (
	"context"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
)

// EligibilityService computes remaining monthly balances and answers whether
// a new request of a type may be submitted. It reads leave history; it never
// mutates it.
type EligibilityService interface {
	// RemainingCasualDays is the department quota minus the business days
	// spanned this calendar month by pending/approved casual requests,
	// floored at zero.
	RemainingCasualDays(ctx context.Context, emp employee.Employee) (int, error)

	// RemainingPermissionHours is the hour-denominated analogue over
	// permission requests starting this month.
	RemainingPermissionHours(ctx context.Context, emp employee.Employee) (int, error)

	// CheckEligibility fails open: a department with no configured policy
	// row answers eligible.
	CheckEligibility(ctx context.Context, emp employee.Employee, leaveType LeaveType) (EligibilityResult, error)
}

// WorkflowService drives a leave request from submission through approval,
// rejection or escalation across the role ladder.
type WorkflowService interface {
	Submit(ctx context.Context, req SubmitRequest) (LeaveResponse, error)

	Approve(ctx context.Context, requestID string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, requestID string, req DecisionRequest) (LeaveResponse, error)
	Escalate(ctx context.Context, requestID string, req EscalateRequest) (LeaveResponse, error)

	Get(ctx context.Context, requestID string, actor employee.Actor) (LeaveResponse, error)
	ListMine(ctx context.Context, actor employee.Actor) ([]LeaveResponse, error)
	ListApprovals(ctx context.Context, actor employee.Actor) ([]LeaveResponse, error)

	Balance(ctx context.Context, actor employee.Actor) (BalanceResponse, error)
}
