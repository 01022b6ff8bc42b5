package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn      = errors.New("you have already checked in today")
	ErrOffSiteNotPermitted   = errors.New("off-site work is not permitted for your department")
	ErrMissingRequiredFields = errors.New("location, reason and customer details are required for off-site check-in")
	ErrLateReasonRequired    = errors.New("a reason is required for late attendance")

	// Check-out errors
	ErrNotCheckedIn           = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut      = errors.New("you have already checked out")
	ErrOvertimeReasonRequired = errors.New("a reason is required for overtime")
	ErrOfficeCheckoutRequired = errors.New("your department requires checking out from the office")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
