package calendar

import (
	"context"
	"time"
)

// CalendarService answers working-day questions for the attendance and leave
// engines and exposes the holiday/settings admin surface.
type CalendarService interface {
	// IsNonWorkingDay reports whether date falls on the weekly rest day or a
	// configured holiday. Only the calendar day of date is considered.
	IsNonWorkingDay(ctx context.Context, date time.Time) (bool, error)

	// BusinessDaysBetween counts the days in [start, end] inclusive that are
	// working days. Same-day ranges yield 0 or 1.
	BusinessDaysBetween(ctx context.Context, start, end time.Time) (int, error)

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest, editorID string) (SettingsResponse, error)
}
