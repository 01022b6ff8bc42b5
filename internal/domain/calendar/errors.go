package calendar

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrInvalidRange    = errors.New("end date must not be before start date")
)
