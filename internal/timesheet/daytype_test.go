package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDay_MatchesISOWeekday(t *testing.T) {
	// Без праздников классификация обязана совпадать с календарем
	year, month := 2025, 3
	empty := map[int]bool{}

	for day := 1; day <= DaysIn(year, month); day++ {
		got := ClassifyDay(year, month, day, empty)

		switch time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday() {
		case time.Saturday:
			assert.Equal(t, DaySaturday, got, "день %d", day)
		case time.Sunday:
			assert.Equal(t, DaySunday, got, "день %d", day)
		default:
			assert.Equal(t, DayWeekday, got, "день %d", day)
		}
	}
}

func TestClassifyDay_HolidayOverridesWeekday(t *testing.T) {
	// 1 января 2025 — среда, но праздник главнее
	holidays := map[int]bool{1: true, 4: true}

	assert.Equal(t, DayHoliday, ClassifyDay(2025, 1, 1, holidays))
	// 4 января 2025 — суббота, и тоже праздник
	assert.Equal(t, DayHoliday, ClassifyDay(2025, 1, 4, holidays))
}

func TestClassifyDay_InvalidDateFallsBackToWeekday(t *testing.T) {
	empty := map[int]bool{}

	assert.Equal(t, DayWeekday, ClassifyDay(2025, 2, 30, empty))
	assert.Equal(t, DayWeekday, ClassifyDay(2025, 13, 1, empty))
	assert.Equal(t, DayWeekday, ClassifyDay(2025, 1, 0, empty))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, 1))
	assert.Equal(t, 28, DaysIn(2025, 2))
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 30, DaysIn(2025, 4))
}
