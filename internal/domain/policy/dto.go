package policy

import "github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"

type UpsertPolicyRequest struct {
	Department                string `json:"department"`
	CheckInTime               string `json:"check_in_time"`
	CheckOutTime              string `json:"check_out_time"`
	AllowOffSite              bool   `json:"allow_off_site"`
	AllowOvertime             bool   `json:"allow_overtime"`
	MaxMonthlyPermissionHours int    `json:"max_monthly_permission_hours"`
	MaxMonthlyCasualDays      int    `json:"max_monthly_casual_days"`
}

func (r *UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := ParseDepartment(r.Department); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of sales, marketing, cre, accounts, hr, technical",
		})
	}

	if _, _, err := validator.ParseClock(r.CheckInTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}

	if _, _, err := validator.ParseClock(r.CheckOutTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	if r.MaxMonthlyPermissionHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_monthly_permission_hours",
			Message: "max_monthly_permission_hours must not be negative",
		})
	}

	if r.MaxMonthlyCasualDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_monthly_casual_days",
			Message: "max_monthly_casual_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	Department                string  `json:"department"`
	CheckInTime               string  `json:"check_in_time"`
	CheckOutTime              string  `json:"check_out_time"`
	AllowOffSite              bool    `json:"allow_off_site"`
	AllowOvertime             bool    `json:"allow_overtime"`
	MaxMonthlyPermissionHours int     `json:"max_monthly_permission_hours"`
	MaxMonthlyCasualDays      int     `json:"max_monthly_casual_days"`
	Configured                bool    `json:"configured"`
	UpdatedBy                 *string `json:"updated_by,omitempty"`
	UpdatedAt                 *string `json:"updated_at,omitempty"`
}
