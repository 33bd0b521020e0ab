package timesheet

import (
	"strconv"
	"strings"
)

// NormalizeHolidays приводит разношерстный список праздников (числа месяца,
// даты ISO, даты со временем) к множеству дней месяца в рамках одного
// (год, месяц). Записи чужого месяца или нераспознанной формы отбрасываются.
func NormalizeHolidays(entries []any, year, month int) map[int]bool {
	days := make(map[int]bool)

	for _, entry := range entries {
		switch v := entry.(type) {
		case int:
			addDay(days, v)
		case int64:
			addDay(days, int(v))
		case float64:
			// JSON-числа приходят как float64
			addDay(days, int(v))
		case string:
			normalizeString(days, v, year, month)
		}
	}

	return days
}

func normalizeString(days map[int]bool, s string, year, month int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}

	if !strings.Contains(s, "-") {
		if d, err := strconv.Atoi(s); err == nil {
			addDay(days, d)
		}
		return
	}

	// "2025-01-01" или "2025-01-01T00:00:00" — время отрезаем
	if idx := strings.IndexAny(s, "T "); idx > 0 {
		s = s[:idx]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	if y != year || m != month {
		return
	}
	addDay(days, d)
}

func addDay(days map[int]bool, d int) {
	if d >= 1 && d <= 31 {
		days[d] = true
	}
}
