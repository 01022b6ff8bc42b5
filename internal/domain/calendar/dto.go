package calendar

import "github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	RecursAnnually bool   `json:"recurs_annually"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSettingsRequest struct {
	RestWeekday int `json:"rest_weekday"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if r.RestWeekday < 0 || r.RestWeekday > 6 {
		return validator.ValidationErrors{{
			Field:   "rest_weekday",
			Message: "rest_weekday must be between 0 (Sunday) and 6 (Saturday)",
		}}
	}
	return nil
}

type HolidayResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	RecursAnnually bool   `json:"recurs_annually"`
}

type SettingsResponse struct {
	RestWeekday     int    `json:"rest_weekday"`
	RestWeekdayName string `json:"rest_weekday_name"`
}
