package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHolidays_MixedInput(t *testing.T) {
	entries := []any{
		5,                     // номер дня
		float64(9),            // номер дня из JSON
		"12",                  // номер дня строкой
		"2025-01-01",          // ISO-дата
		"2025-01-03T00:00:00", // ISO-дата со временем
		"2025-01-08 10:30:00", // дата с временем через пробел
	}

	days := NormalizeHolidays(entries, 2025, 1)

	assert.Equal(t, map[int]bool{1: true, 3: true, 5: true, 8: true, 9: true, 12: true}, days)
}

func TestNormalizeHolidays_WrongScopeDiscarded(t *testing.T) {
	entries := []any{
		"2024-01-06", // чужой год
		"2025-02-06", // чужой месяц
		"2025-01-06",
	}

	days := NormalizeHolidays(entries, 2025, 1)

	assert.Equal(t, map[int]bool{6: true}, days)
}

func TestNormalizeHolidays_GarbageDiscarded(t *testing.T) {
	entries := []any{
		"праздник", // не дата и не число
		"",
		"0",  // вне [1,31]
		"32", // вне [1,31]
		40,
		"2025-01", // не три части
		true,      // неожиданный тип
	}

	days := NormalizeHolidays(entries, 2025, 1)

	assert.Empty(t, days)
}

func TestNormalizeHolidays_Deduplicates(t *testing.T) {
	entries := []any{1, "1", "2025-01-01"}

	days := NormalizeHolidays(entries, 2025, 1)

	assert.Equal(t, map[int]bool{1: true}, days)
}
