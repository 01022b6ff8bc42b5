package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 5, minute)

	_, _, err = ParseClock("25:00")
	assert.Error(t, err)

	_, _, err = ParseClock("9am")
	assert.Error(t, err)
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-10")
	require.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2026-03-10 09:30")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-03-10T09:30")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Contains(t, errs.Error(), "name: name is required")
}
