package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual     LeaveType = "casual"
	LeaveTypePermission LeaveType = "permission"
	LeaveTypeSick       LeaveType = "sick"
	LeaveTypeVacation   LeaveType = "vacation"
)

func ParseLeaveType(s string) (LeaveType, bool) {
	switch LeaveType(s) {
	case LeaveTypeCasual, LeaveTypePermission, LeaveTypeSick, LeaveTypeVacation:
		return LeaveType(s), true
	}
	return "", false
}

// HasMonthlyQuota reports leave types that draw on a monthly balance.
func (t LeaveType) HasMonthlyQuota() bool {
	return t == LeaveTypeCasual || t == LeaveTypePermission
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusEscalated Status = "escalated"
)

// Decided reports terminal states. Approved and rejected requests never
// transition again.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

type HistoryAction string

const (
	ActionApproved  HistoryAction = "approved"
	ActionRejected  HistoryAction = "rejected"
	ActionEscalated HistoryAction = "escalated"
)

// HistoryEntry is one step of a request's approval trail, append-only and
// ordered by creation time.
type HistoryEntry struct {
	ID        string
	RequestID string
	ActorID   string
	ActorName string
	Action    HistoryAction
	Notes     *string
	CreatedAt time.Time
}

// LeaveRequest is an employee's absence request routed through the approval
// ladder. Mutated only by the current approver or escalation target.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartAt time.Time
	EndAt   time.Time

	Reason        string
	AttachmentURL *string

	Status            Status
	CurrentApproverID string
	ApproverNotes     *string
	EscalatedFrom     *string
	EscalatedTo       *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	History []HistoryEntry

	// Joined for responses
	EmployeeName *string
}

// DurationHours is the whole-hour span of the request, used for
// permission-type quota accounting and display.
func (r LeaveRequest) DurationHours() int {
	return int(r.EndAt.Sub(r.StartAt).Hours())
}
