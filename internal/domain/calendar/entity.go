package calendar

import "time"

// Holiday is a configured non-working day. Annual holidays recur on the same
// month and day every year; one-off holidays match their exact date.
type Holiday struct {
	ID             string
	Name           string
	Date           time.Time
	RecursAnnually bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Matches reports whether the holiday falls on the given calendar day.
func (h Holiday) Matches(date time.Time) bool {
	if h.RecursAnnually {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() &&
		h.Date.Month() == date.Month() &&
		h.Date.Day() == date.Day()
}

// Settings holds company-wide calendar configuration. Single row.
type Settings struct {
	RestWeekday time.Weekday
	UpdatedBy   *string
	UpdatedAt   time.Time
}

// DefaultSettings applies when no settings row exists yet.
func DefaultSettings() Settings {
	return Settings{RestWeekday: time.Sunday}
}
