package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	calendar.HolidayRepository
	calendar.SettingsRepository
}

func NewCalendarService(holidayRepo calendar.HolidayRepository, settingsRepo calendar.SettingsRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		HolidayRepository:  holidayRepo,
		SettingsRepository: settingsRepo,
	}
}

// IsNonWorkingDay implements calendar.CalendarService.
func (s *CalendarServiceImpl) IsNonWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get calendar settings: %w", err)
	}

	if date.Weekday() == settings.RestWeekday {
		return true, nil
	}

	holidays, err := s.HolidayRepository.ListForRange(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to list holidays: %w", err)
	}

	for _, h := range holidays {
		if h.Matches(date) {
			return true, nil
		}
	}

	return false, nil
}

// BusinessDaysBetween implements calendar.CalendarService.
func (s *CalendarServiceImpl) BusinessDaysBetween(ctx context.Context, start, end time.Time) (int, error) {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if endDay.Before(startDay) {
		return 0, calendar.ErrInvalidRange
	}

	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get calendar settings: %w", err)
	}

	holidays, err := s.HolidayRepository.ListForRange(ctx, startDay, endDay)
	if err != nil {
		return 0, fmt.Errorf("failed to list holidays: %w", err)
	}

	count := 0
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == settings.RestWeekday {
			continue
		}
		holiday := false
		for _, h := range holidays {
			if h.Matches(day) {
				holiday = true
				break
			}
		}
		if !holiday {
			count++
		}
	}

	return count, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CreateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	h, err := s.HolidayRepository.Create(ctx, calendar.Holiday{
		Name:           req.Name,
		Date:           date,
		RecursAnnually: req.RecursAnnually,
	})
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(h), nil
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context) ([]calendar.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}

	return responses, nil
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

// GetSettings implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetSettings(ctx context.Context) (calendar.SettingsResponse, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return calendar.SettingsResponse{}, fmt.Errorf("failed to get calendar settings: %w", err)
	}

	return calendar.SettingsResponse{
		RestWeekday:     int(settings.RestWeekday),
		RestWeekdayName: settings.RestWeekday.String(),
	}, nil
}

// UpdateSettings implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpdateSettings(ctx context.Context, req calendar.UpdateSettingsRequest, editorID string) (calendar.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.SettingsResponse{}, err
	}

	updated, err := s.SettingsRepository.Update(ctx, calendar.Settings{
		RestWeekday: time.Weekday(req.RestWeekday),
		UpdatedBy:   &editorID,
	})
	if err != nil {
		return calendar.SettingsResponse{}, fmt.Errorf("failed to update calendar settings: %w", err)
	}

	return calendar.SettingsResponse{
		RestWeekday:     int(updated.RestWeekday),
		RestWeekdayName: updated.RestWeekday.String(),
	}, nil
}

func mapHolidayToResponse(h calendar.Holiday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:             h.ID,
		Name:           h.Name,
		Date:           h.Date.Format("2006-01-02"),
		RecursAnnually: h.RecursAnnually,
	}
}
