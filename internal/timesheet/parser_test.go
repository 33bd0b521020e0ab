package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Январь 2025: 1 — среда, 4 — суббота, 5 — воскресенье.
func localizedGrid() [][]string {
	return [][]string{
		{"Табель учета рабочего времени за январь 2025"},
		{"№", "ФИО", "Отделение", "", "", "", "", "", "Отработано дней"},
		{"", "", "", "1", "2", "3", "4", "5", ""},
		{"1", "Иванов Иван Иванович", "Терапия", "8", "Б", "8", "-", "В", ""},
		{"2", "Петрова Анна Сергеевна", "Терапия", "8", "8", "8", "", "отсутствует", "15"},
	}
}

func TestDetectTemplate_Localized(t *testing.T) {
	parser, err := DetectTemplate(localizedGrid())

	require.NoError(t, err)
	assert.IsType(t, localizedRoster{}, parser)
}

func TestDetectTemplate_Simple(t *testing.T) {
	grid := [][]string{
		{"Employee", "Department", "01", "02", "03"},
	}

	parser, err := DetectTemplate(grid)

	require.NoError(t, err)
	assert.IsType(t, simpleRoster{}, parser)
}

func TestDetectTemplate_Unknown(t *testing.T) {
	grid := [][]string{
		{"что-то", "совсем", "другое"},
	}

	_, err := DetectTemplate(grid)

	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestLocalizedRoster_Counters(t *testing.T) {
	employees, err := ParseRoster(localizedGrid(), 2025, 1, map[int]bool{})
	require.NoError(t, err)
	require.Len(t, employees, 2)

	ivanov := employees[0]
	assert.Equal(t, "Иванов Иван Иванович", ivanov.FullName)
	assert.Equal(t, "Терапия", ivanov.Department)
	// "8" (1 число, будни), "Б" (2 число, будни), "8" (3 число, будни), "-" пропуск, "В" (5 число, вс)
	assert.Equal(t, 2, ivanov.NumbersWeekday)
	assert.Equal(t, 1, ivanov.LettersWeekday)
	assert.Equal(t, 1, ivanov.LettersSunday)
	assert.Equal(t, 0, ivanov.LettersSaturday)
	assert.Nil(t, ivanov.TotalOverride)

	petrova := employees[1]
	// "отсутствует" не считается записью
	assert.Equal(t, 3, petrova.NumbersWeekday)
	assert.Equal(t, 0, petrova.LettersSunday)
	require.NotNil(t, petrova.TotalOverride)
	assert.Equal(t, 15.0, *petrova.TotalOverride)
}

func TestLocalizedRoster_SkipsTotalsRow(t *testing.T) {
	grid := localizedGrid()
	grid = append(grid, []string{"", "Итого по подразделению", "", "16", "16", "16", "", "", "48"})

	employees, err := ParseRoster(grid, 2025, 1, map[int]bool{})
	require.NoError(t, err)

	require.Len(t, employees, 2)
	for _, emp := range employees {
		assert.NotContains(t, emp.FullName, "Итого")
	}
}

func TestLocalizedRoster_CounterSumEqualsFilledCells(t *testing.T) {
	employees, err := ParseRoster(localizedGrid(), 2025, 1, map[int]bool{})
	require.NoError(t, err)

	// У Иванова заполнено 4 ячейки (прочерк не в счет)
	ivanov := employees[0]
	sum := ivanov.LettersWeekday + ivanov.LettersSaturday + ivanov.LettersSunday + ivanov.LettersHoliday +
		ivanov.NumbersWeekday + ivanov.NumbersSaturday + ivanov.NumbersSunday + ivanov.NumbersHoliday
	assert.Equal(t, 4, sum)
}

func TestLocalizedRoster_HolidayBucket(t *testing.T) {
	// 1 января — праздник: буквенная отметка уходит в праздничный счетчик
	grid := [][]string{
		{"№", "ФИО"},
		{"", "", "1", "2"},
		{"1", "Иванов Иван Иванович", "О", "8"},
	}

	employees, err := ParseRoster(grid, 2025, 1, map[int]bool{1: true})
	require.NoError(t, err)
	require.Len(t, employees, 1)

	assert.Equal(t, 1, employees[0].LettersHoliday)
	assert.Equal(t, 0, employees[0].LettersWeekday)
	assert.Equal(t, 1, employees[0].NumbersWeekday)
}

func TestSimpleRoster_Parse(t *testing.T) {
	grid := [][]string{
		{"Employee", "Department", "01", "02", "03", "04", "05"},
		{"Сидоров Петр Петрович", "Хирургия", "8", "-", "Б", "8", "В"},
		{"", "", "8", "8"}, // строка без имени пропускается
	}

	employees, err := ParseRoster(grid, 2025, 1, map[int]bool{})
	require.NoError(t, err)
	require.Len(t, employees, 1)

	emp := employees[0]
	assert.Equal(t, "Сидоров Петр Петрович", emp.FullName)
	assert.Equal(t, "Хирургия", emp.Department)
	assert.Equal(t, 1, emp.NumbersWeekday)  // 01 среда
	assert.Equal(t, 1, emp.LettersWeekday)  // 03 пятница, "Б"
	assert.Equal(t, 1, emp.NumbersSaturday) // 04 суббота, "8"
	assert.Equal(t, 1, emp.LettersSunday)   // 05 воскресенье, "В"
	assert.Nil(t, emp.TotalOverride)
}

func TestSimpleRoster_IgnoresNonPaddedHeaders(t *testing.T) {
	// Однозначный "1" не является заголовком дня в упрощенном шаблоне
	grid := [][]string{
		{"Employee", "1", "01"},
		{"Сидоров Петр Петрович", "Б", "8"},
	}

	employees, err := ParseRoster(grid, 2025, 1, map[int]bool{})
	require.NoError(t, err)
	require.Len(t, employees, 1)

	sum := employees[0].LettersWeekday + employees[0].NumbersWeekday
	assert.Equal(t, 1, sum)
	assert.Equal(t, 1, employees[0].NumbersWeekday)
}
