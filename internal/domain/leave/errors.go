package leave

import "errors"

var (
	// Submission errors
	ErrNotEligible           = errors.New("leave balance for this type is exhausted")
	ErrInvalidRange          = errors.New("leave end must not be before its start")
	ErrIncludesNonWorkingDay = errors.New("leave range includes a non-working day")

	// Workflow-authority errors. These guard the approval-hierarchy
	// invariant and are never downgraded to warnings.
	ErrForbidden            = errors.New("you are not the current approver for this request")
	ErrNotPending           = errors.New("leave request is not awaiting a decision")
	ErrEscalationRequired   = errors.New("requester is at or above your level; escalate instead of deciding")
	ErrCannotEscalateFurther = errors.New("no further escalation target above managing director")
	ErrReasonRequired       = errors.New("rejection notes are required")
	ErrInvalidEscalationTarget = errors.New("escalation target does not hold the next role on the ladder")

	// Store-conflict translation: a compare-and-set miss on the status
	// column means another approver decided first.
	ErrAlreadyProcessed = errors.New("leave request has already been processed")

	ErrRequestNotFound = errors.New("leave request not found")
)
