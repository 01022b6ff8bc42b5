package attendance

import (
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

type WorkLocation string

const (
	WorkLocationOffice  WorkLocation = "office"
	WorkLocationOffSite WorkLocation = "off_site"
)

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

// Attendance is one employee's session for one local calendar day. Created on
// check-in, mutated exactly once on check-out, immutable after that. The
// store enforces at most one row per (employee, date).
type Attendance struct {
	ID         string
	EmployeeID string
	Department policy.Department

	// Date is the local working day, not a timestamp.
	Date     time.Time
	CheckIn  time.Time
	CheckOut *time.Time

	WorkLocation    WorkLocation
	LocationDetails *string
	OffSiteReason   *string
	CustomerDetails *string

	IsLate     bool
	LateReason *string

	IsOvertime         bool
	OvertimeReason     *string
	OvertimeHours      *int
	OvertimeMinutes    *int
	LateCheckoutReason *string

	// Policy clocks are snapshotted at check-in so later policy edits do not
	// rewrite history.
	PolicyCheckIn  policy.Clock
	PolicyCheckOut policy.Clock

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
