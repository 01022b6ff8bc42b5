package leave

import (
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	Actor employee.Actor `json:"-"`

	Type          string  `json:"type"`
	StartAt       string  `json:"start_at"` // "YYYY-MM-DD HH:MM"
	EndAt         string  `json:"end_at"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := ParseLeaveType(r.Type); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of casual, permission, sick, vacation",
		})
	}

	if _, ok := validator.IsValidDateTime(r.StartAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at must be in YYYY-MM-DD HH:MM format",
		})
	}

	if _, ok := validator.IsValidDateTime(r.EndAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be in YYYY-MM-DD HH:MM format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	Actor employee.Actor `json:"-"`

	Notes string `json:"notes,omitempty"`
}

type EscalateRequest struct {
	Actor employee.Actor `json:"-"`

	TargetID string `json:"target_id"`
	Notes    string `json:"notes,omitempty"`
}

func (r *EscalateRequest) Validate() error {
	if validator.IsEmpty(r.TargetID) {
		return validator.ValidationErrors{{
			Field:   "target_id",
			Message: "target_id is required",
		}}
	}
	return nil
}

type HistoryEntryResponse struct {
	ActorID   string  `json:"actor_id"`
	ActorName string  `json:"actor_name"`
	Action    string  `json:"action"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type LeaveResponse struct {
	ID                string                 `json:"id"`
	EmployeeID        string                 `json:"employee_id"`
	EmployeeName      *string                `json:"employee_name,omitempty"`
	Type              string                 `json:"type"`
	StartAt           string                 `json:"start_at"`
	EndAt             string                 `json:"end_at"`
	Reason            string                 `json:"reason"`
	AttachmentURL     *string                `json:"attachment_url,omitempty"`
	Status            string                 `json:"status"`
	CurrentApproverID string                 `json:"current_approver_id"`
	ApproverNotes     *string                `json:"approver_notes,omitempty"`
	EscalatedFrom     *string                `json:"escalated_from,omitempty"`
	EscalatedTo       *string                `json:"escalated_to,omitempty"`
	SubmittedAt       string                 `json:"submitted_at"`
	Duration          string                 `json:"duration"`
	History           []HistoryEntryResponse `json:"history,omitempty"`
}

// EligibilityResult is the answer to "may this employee submit this type".
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// BalanceResponse reports the caller's remaining monthly quotas.
type BalanceResponse struct {
	Month                   string `json:"month"`
	RemainingCasualDays     int    `json:"remaining_casual_days"`
	RemainingPermissionHours int   `json:"remaining_permission_hours"`
	MaxMonthlyCasualDays     int   `json:"max_monthly_casual_days"`
	MaxMonthlyPermissionHours int  `json:"max_monthly_permission_hours"`
}
