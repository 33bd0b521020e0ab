package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Синонимы заголовка колонки подразделения в выгрузках разных лет.
var departmentHeaders = []string{"отделение", "подразделение", "отдел"}

// localizedRoster разбирает "большой" табель кадровой системы: шапка с "ФИО",
// строка с номерами дней сразу под шапкой, опциональные колонки подразделения
// и "Отработано дней".
type localizedRoster struct{}

func (localizedRoster) Parse(grid [][]string, year, month int, holidays map[int]bool) ([]ParsedEmployee, error) {
	const op = "timesheet.localizedRoster.Parse"

	headerRow, nameCol := findLocalizedHeader(grid)
	if headerRow < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownTemplate)
	}

	deptCol := findDepartmentColumn(grid, headerRow)
	totalCol := findTotalColumn(grid, headerRow)

	// Номера дней стоят строкой ниже основной шапки.
	dayCols := make(map[int]int)
	dayRow := headerRow + 1
	if dayRow < len(grid) {
		for col := range grid[dayRow] {
			cell := cellAt(grid, dayRow, col)
			if d, err := strconv.Atoi(cell); err == nil && d >= 1 && d <= 31 {
				dayCols[col] = d
			}
		}
	}

	var employees []ParsedEmployee
	for row := dayRow + 1; row < len(grid); row++ {
		name := cellAt(grid, row, nameCol)
		if name == "" || strings.EqualFold(name, localizedNameHeader) {
			continue
		}
		// Итоговая строка табеля сотрудником не является
		if strings.HasPrefix(strings.ToLower(name), "итого") {
			continue
		}
		// Повтор шапки или строка сквозной нумерации
		if _, numeric := parseNumber(name); numeric {
			continue
		}

		emp := ParsedEmployee{FullName: name}
		if deptCol >= 0 {
			emp.Department = cellAt(grid, row, deptCol)
		}

		for col, day := range dayCols {
			value := cellAt(grid, row, col)
			if isEmptyMark(value) {
				continue
			}
			countDay(&emp, ClassifyDay(year, month, day, holidays), value)
		}

		if totalCol >= 0 {
			if total, ok := parseNumber(cellAt(grid, row, totalCol)); ok {
				emp.TotalOverride = &total
			}
		}

		employees = append(employees, emp)
	}

	return employees, nil
}

func findLocalizedHeader(grid [][]string) (row, col int) {
	for r := range grid {
		for c := range grid[r] {
			if strings.EqualFold(cellAt(grid, r, c), localizedNameHeader) {
				return r, c
			}
		}
	}
	return -1, -1
}

func findDepartmentColumn(grid [][]string, headerRow int) int {
	if headerRow >= len(grid) {
		return -1
	}
	for col := range grid[headerRow] {
		cell := strings.ToLower(cellAt(grid, headerRow, col))
		for _, synonym := range departmentHeaders {
			if strings.Contains(cell, synonym) {
				return col
			}
		}
	}
	return -1
}

// findTotalColumn ищет колонку "Отработано дней" в небольшом окне строк
// вокруг шапки: в части выгрузок она стоит строкой выше или ниже.
func findTotalColumn(grid [][]string, headerRow int) int {
	for r := headerRow - 2; r <= headerRow+2; r++ {
		if r < 0 || r >= len(grid) {
			continue
		}
		for col := range grid[r] {
			cell := strings.ToLower(cellAt(grid, r, col))
			if strings.Contains(cell, "отработ") && strings.Contains(cell, "дн") {
				return col
			}
		}
	}
	return -1
}
