package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/calendar"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements calendar.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, date, recurs_annually)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.Date, h.RecursAnnually).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// ListForRange implements calendar.HolidayRepository.
func (r *holidayRepository) ListForRange(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, recurs_annually, created_at, updated_at
		FROM holidays
		WHERE recurs_annually = TRUE
		   OR (date >= $1::date AND date <= $2::date)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for range: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// List implements calendar.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, recurs_annually, created_at, updated_at
		FROM holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}

	return nil
}

func scanHolidays(rows pgx.Rows) ([]calendar.Holiday, error) {
	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.RecursAnnually, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

type calendarSettingsRepository struct {
	db *database.DB
}

func NewCalendarSettingsRepository(db *database.DB) calendar.SettingsRepository {
	return &calendarSettingsRepository{db: db}
}

// Get implements calendar.SettingsRepository. The table holds at most one
// row; an empty table answers the defaults.
func (r *calendarSettingsRepository) Get(ctx context.Context) (calendar.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rest_weekday, updated_by, updated_at
		FROM calendar_settings
		LIMIT 1
	`

	var s calendar.Settings
	var weekday int
	err := q.QueryRow(ctx, query).Scan(&weekday, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.DefaultSettings(), nil
		}
		return calendar.Settings{}, fmt.Errorf("failed to get calendar settings: %w", err)
	}
	s.RestWeekday = time.Weekday(weekday)

	return s, nil
}

// Update implements calendar.SettingsRepository.
func (r *calendarSettingsRepository) Update(ctx context.Context, s calendar.Settings) (calendar.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_settings (singleton, rest_weekday, updated_by)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE SET
			rest_weekday = EXCLUDED.rest_weekday,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, int(s.RestWeekday), s.UpdatedBy).Scan(&s.UpdatedAt)
	if err != nil {
		return calendar.Settings{}, fmt.Errorf("failed to update calendar settings: %w", err)
	}

	return s, nil
}
