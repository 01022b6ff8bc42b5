package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository persists leave requests and their approval history.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID loads a request with its ordered history.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListAwaiting returns requests whose current approver or escalation
	// target is the given employee and whose status is still undecided.
	ListAwaiting(ctx context.Context, approverID string) ([]LeaveRequest, error)

	// ListOverlappingMonth returns the employee's requests of the given type
	// and statuses that overlap the calendar month containing ref.
	ListOverlappingMonth(ctx context.Context, employeeID string, leaveType LeaveType, statuses []Status, ref time.Time) ([]LeaveRequest, error)

	// Decide transitions the request from expected to the new status in a
	// single compare-and-set write and appends the history entry in the same
	// transaction. Returns ErrAlreadyProcessed when the status no longer
	// matches expected, so two approvers cannot both decide one request.
	Decide(ctx context.Context, req LeaveRequest, expected Status, entry HistoryEntry) error
}
