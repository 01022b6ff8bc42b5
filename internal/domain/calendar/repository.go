package calendar

import (
	"context"
	"time"
)

// HolidayRepository persists configured holidays.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// ListForRange returns every holiday that could fall inside [start, end]:
	// all annual holidays plus one-off holidays dated within the range.
	ListForRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	List(ctx context.Context) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository persists the single calendar settings row.
type SettingsRepository interface {
	// Get returns the settings row, or DefaultSettings when none exists.
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}
