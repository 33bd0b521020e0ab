package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// simpleRoster разбирает упрощенный табель: шапка в первой строке, колонка
// "Employee", дни помечены двузначными заголовками "01".."31". Колонки
// "Отработано дней" в этом шаблоне не бывает.
type simpleRoster struct{}

func (simpleRoster) Parse(grid [][]string, year, month int, holidays map[int]bool) ([]ParsedEmployee, error) {
	const op = "timesheet.simpleRoster.Parse"

	if len(grid) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownTemplate)
	}

	nameCol := -1
	deptCol := -1
	dayCols := make(map[int]int)

	for col := range grid[0] {
		cell := cellAt(grid, 0, col)
		switch {
		case strings.EqualFold(cell, simpleNameHeader):
			nameCol = col
		case strings.EqualFold(cell, "Department"):
			deptCol = col
		case len(cell) == 2:
			if d, err := strconv.Atoi(cell); err == nil && d >= 1 && d <= 31 {
				dayCols[col] = d
			}
		}
	}

	if nameCol < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownTemplate)
	}

	var employees []ParsedEmployee
	for row := 1; row < len(grid); row++ {
		name := cellAt(grid, row, nameCol)
		if name == "" || strings.EqualFold(name, simpleNameHeader) {
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

		employees = append(employees, emp)
	}

	return employees, nil
}
