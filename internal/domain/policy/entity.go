package policy

import (
	"fmt"
	"time"
)

type Department string

const (
	DepartmentSales     Department = "sales"
	DepartmentMarketing Department = "marketing"
	DepartmentCRE       Department = "cre"
	DepartmentAccounts  Department = "accounts"
	DepartmentHR        Department = "hr"
	DepartmentTechnical Department = "technical"
)

// Departments lists every known department, in display order.
var Departments = []Department{
	DepartmentSales,
	DepartmentMarketing,
	DepartmentCRE,
	DepartmentAccounts,
	DepartmentHR,
	DepartmentTechnical,
}

func ParseDepartment(s string) (Department, bool) {
	for _, d := range Departments {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// AlwaysOffSiteEligible reports the sales/marketing carve-out: field
// departments may check in off-site regardless of the policy flag.
func (d Department) AlwaysOffSiteEligible() bool {
	return d == DepartmentSales || d == DepartmentMarketing
}

// RequiresOfficeCheckout reports departments whose sessions must have been
// opened at the office to be closed.
func (d Department) RequiresOfficeCheckout() bool {
	return d == DepartmentCRE || d == DepartmentAccounts || d == DepartmentHR
}

// Clock is a time of day with minute precision, stored as "HH:MM".
type Clock struct {
	Hour   int
	Minute int
}

func NewClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On anchors the clock to the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// DepartmentPolicy holds the attendance and leave rules for one department.
// Exactly one row per department; an absent row means system defaults.
type DepartmentPolicy struct {
	Department                Department
	CheckInTime               Clock
	CheckOutTime              Clock
	AllowOffSite              bool
	AllowOvertime             bool
	MaxMonthlyPermissionHours int
	MaxMonthlyCasualDays      int
	UpdatedBy                 *string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// DefaultPolicy returns the system defaults applied when a department has no
// configured policy row. Business logic never sees a partially populated
// policy: defaults are resolved here, at the boundary.
func DefaultPolicy(department Department) DepartmentPolicy {
	return DepartmentPolicy{
		Department:                department,
		CheckInTime:               NewClock(9, 0),
		CheckOutTime:              NewClock(18, 0),
		AllowOffSite:              false,
		AllowOvertime:             false,
		MaxMonthlyPermissionHours: 2,
		MaxMonthlyCasualDays:      1,
	}
}
