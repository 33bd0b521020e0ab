package timesheet

import "time"

type DayType string

const (
	DayWeekday  DayType = "weekday"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
	DayHoliday  DayType = "holiday"
)

// ClassifyDay относит день месяца к одной из четырех корзин. Праздник
// перекрывает будни и выходные. Некорректная дата считается буднем.
func ClassifyDay(year, month, day int, holidays map[int]bool) DayType {
	if holidays[day] {
		return DayHoliday
	}

	if month < 1 || month > 12 || day < 1 || day > DaysIn(year, month) {
		return DayWeekday
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	switch t.Weekday() {
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	}

	return DayWeekday
}

// DaysIn возвращает число дней в месяце.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
