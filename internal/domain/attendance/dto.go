package attendance

import (
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Actor employee.Actor `json:"-"`

	WorkLocation    string `json:"work_location"`
	LocationDetails string `json:"location_details,omitempty"`
	OffSiteReason   string `json:"off_site_reason,omitempty"`
	CustomerDetails string `json:"customer_details,omitempty"`
	LateReason      string `json:"late_reason,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkLocation != string(WorkLocationOffice) && r.WorkLocation != string(WorkLocationOffSite) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_location",
			Message: "work_location must be office or off_site",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Actor employee.Actor `json:"-"`

	LateReason     string `json:"late_reason,omitempty"`
	OvertimeReason string `json:"overtime_reason,omitempty"`
}

type MyAttendanceFilter struct {
	Month string // "YYYY-MM", optional
	Page  int
	Limit int
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Department      string  `json:"department"`
	Date            string  `json:"date"`
	CheckInTime     string  `json:"check_in_time"`
	CheckOutTime    *string `json:"check_out_time,omitempty"`
	WorkLocation    string  `json:"work_location"`
	LocationDetails *string `json:"location_details,omitempty"`
	OffSiteReason   *string `json:"off_site_reason,omitempty"`
	CustomerDetails *string `json:"customer_details,omitempty"`
	IsLate          bool    `json:"is_late"`
	LateReason      *string `json:"late_reason,omitempty"`
	IsOvertime      bool    `json:"is_overtime"`
	OvertimeReason  *string `json:"overtime_reason,omitempty"`
	OvertimeHours   *int    `json:"overtime_hours,omitempty"`
	OvertimeMinutes *int    `json:"overtime_minutes,omitempty"`
	RequiredCheckIn string  `json:"required_check_in"`
	RequiredOut     string  `json:"required_check_out"`
	Status          string  `json:"status"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
