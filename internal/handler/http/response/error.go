package response

import (
	"errors"
	"net/http"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/attendance"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/calendar"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/geofence"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State conflicts are 409,
// business-rule refusals 422, authority failures 403, lookups 404.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		RuleViolation(w, "No open attendance session today")
	case errors.Is(err, attendance.ErrOffSiteNotPermitted):
		RuleViolation(w, "Off-site attendance is not permitted for your department")
	case errors.Is(err, attendance.ErrMissingRequiredFields):
		RuleViolation(w, "Off-site check-in requires location details, reason and customer details")
	case errors.Is(err, attendance.ErrLateReasonRequired):
		RuleViolation(w, "A reason is required when checking in or out past the policy time")
	case errors.Is(err, attendance.ErrOvertimeReasonRequired):
		RuleViolation(w, "A reason is required for overtime checkout")
	case errors.Is(err, attendance.ErrOfficeCheckoutRequired):
		RuleViolation(w, "Your department must check out from the office")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrNotEligible):
		RuleViolation(w, err.Error())
	case errors.Is(err, leave.ErrInvalidRange):
		RuleViolation(w, "Leave end must not be before its start")
	case errors.Is(err, leave.ErrIncludesNonWorkingDay):
		RuleViolation(w, "Leave range includes a rest day or holiday")
	case errors.Is(err, leave.ErrForbidden):
		Forbidden(w, "You are not the current approver for this request")
	case errors.Is(err, leave.ErrNotPending):
		RuleViolation(w, "Leave request is not awaiting a decision")
	case errors.Is(err, leave.ErrEscalationRequired):
		RuleViolation(w, "Requester is at or above your level; escalate instead of deciding")
	case errors.Is(err, leave.ErrCannotEscalateFurther):
		RuleViolation(w, "No further escalation target exists")
	case errors.Is(err, leave.ErrReasonRequired):
		RuleViolation(w, "Rejection notes are required")
	case errors.Is(err, leave.ErrInvalidEscalationTarget):
		RuleViolation(w, "Escalation target does not hold the next role on the ladder")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrUnknownDepartment):
		BadRequest(w, "Unknown department", nil)
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Department policy not found")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Geofence domain errors
	case errors.Is(err, geofence.ErrOfficeNotFound):
		NotFound(w, "Office location not found")
	case errors.Is(err, geofence.ErrNoOfficesConfigured):
		RuleViolation(w, "No office locations are configured")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrApproverNotFound):
		RuleViolation(w, "No approver is configured for this employee")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
