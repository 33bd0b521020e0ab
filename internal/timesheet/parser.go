package timesheet

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownTemplate = errors.New(`не найдены маркеры шаблона табеля: "ФИО" или "Employee"`)

const (
	// Маркер локализованного табеля и одновременно заголовок колонки с именем.
	localizedNameHeader = "ФИО"
	// Заголовок колонки с именем в упрощенном табеле.
	simpleNameHeader = "Employee"
	// Отметка "нет записи" помимо прочерка.
	absentMarker = "отсутствует"
)

// ParsedEmployee — одна строка табеля: 8 счетчиков по типам дней плюс
// необязательная явная сумма отработанных дней.
type ParsedEmployee struct {
	FullName   string
	Department string

	LettersWeekday  int
	LettersSaturday int
	LettersSunday   int
	LettersHoliday  int
	NumbersWeekday  int
	NumbersSaturday int
	NumbersSunday   int
	NumbersHoliday  int

	// Значение колонки "Отработано дней", если она есть в шаблоне.
	TotalOverride *float64
}

// RosterParser — общий контракт двух поддерживаемых шаблонов табеля.
type RosterParser interface {
	Parse(grid [][]string, year, month int, holidays map[int]bool) ([]ParsedEmployee, error)
}

// DetectTemplate подбирает парсер по маркерам заголовков: сперва ищем
// локализованный маркер по всему листу, затем колонку "Employee" в первой
// строке. Других шаблонов кадровая система не выгружает.
func DetectTemplate(grid [][]string) (RosterParser, error) {
	for _, row := range grid {
		for _, cell := range row {
			if strings.EqualFold(strings.TrimSpace(cell), localizedNameHeader) {
				return localizedRoster{}, nil
			}
		}
	}

	if len(grid) > 0 {
		for _, cell := range grid[0] {
			if strings.EqualFold(strings.TrimSpace(cell), simpleNameHeader) {
				return simpleRoster{}, nil
			}
		}
	}

	return nil, ErrUnknownTemplate
}

// ParseRoster — точка входа разбора: выбор шаблона и извлечение сотрудников.
func ParseRoster(grid [][]string, year, month int, holidays map[int]bool) ([]ParsedEmployee, error) {
	parser, err := DetectTemplate(grid)
	if err != nil {
		return nil, err
	}
	return parser.Parse(grid, year, month, holidays)
}

func cellAt(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	if col < 0 || col >= len(grid[row]) {
		return ""
	}
	return strings.TrimSpace(grid[row][col])
}

// parseNumber разбирает число в русской или английской записи ("7,5" / "7.5").
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isEmptyMark(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	return strings.EqualFold(s, absentMarker)
}

// countDay раскидывает одну ячейку табеля по счетчикам: число — отработанные
// часы/смены, все остальное — буквенный код неявки или отпуска.
func countDay(emp *ParsedEmployee, dayType DayType, value string) {
	if _, numeric := parseNumber(value); numeric {
		switch dayType {
		case DaySaturday:
			emp.NumbersSaturday++
		case DaySunday:
			emp.NumbersSunday++
		case DayHoliday:
			emp.NumbersHoliday++
		default:
			emp.NumbersWeekday++
		}
		return
	}

	switch dayType {
	case DaySaturday:
		emp.LettersSaturday++
	case DaySunday:
		emp.LettersSunday++
	case DayHoliday:
		emp.LettersHoliday++
	default:
		emp.LettersWeekday++
	}
}
