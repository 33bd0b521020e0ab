package kpi

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hospital-kpi/internal/storage"
	"hospital-kpi/internal/timesheet"
)

// Compute сопоставляет сотрудников табеля со справочником KPI и считает
// процент выполнения и сумму выплаты. Ошибки по отдельным сотрудникам
// копятся, обход строк не прерывается.
func Compute(employees []timesheet.ParsedEmployee, refs []storage.KpiReference, dayQuota, shiftQuota int, department string) ([]CalculationResult, []CalculationError) {
	if department != "" && len(refs) == 0 {
		return nil, []CalculationError{noEmployeesError(department)}
	}

	refByName := make(map[string]storage.KpiReference, len(refs))
	for _, ref := range refs {
		refByName[strings.ToLower(strings.TrimSpace(ref.FullName))] = ref
	}

	var results []CalculationResult
	var calcErrors []CalculationError
	seen := make(map[string]bool)

	for _, emp := range employees {
		name := strings.TrimSpace(emp.FullName)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			calcErrors = append(calcErrors, CalculationError{
				FullName: name,
				Kind:     ErrDuplicate,
				Detail:   "сотрудник встречается в табеле повторно",
			})
			continue
		}
		seen[key] = true

		ref, ok := refByName[key]
		if !ok {
			calcErrors = append(calcErrors, CalculationError{
				FullName: name,
				Kind:     ErrNoKpiMapping,
				Detail:   "сотрудник не найден в справочнике KPI",
			})
			continue
		}

		if ref.CategoryCode == categoryStudent {
			calcErrors = append(calcErrors, CalculationError{
				FullName: name,
				Kind:     ErrStudent,
				Detail:   "студентам KPI не начисляется",
			})
			continue
		}

		schedule := normalizeSchedule(ref.ScheduleType)

		var daysAssigned int
		var notWorked float64
		var override *float64

		switch schedule {
		case ScheduleShift:
			daysAssigned = shiftQuota
			notWorked = float64(emp.LettersWeekday + emp.LettersSaturday)
		default:
			daysAssigned = dayQuota
			// Буквенные отметки выходных и праздников при дневном графике
			// учитываются только в счетчиках, из нормы не вычитаются.
			notWorked = float64(emp.LettersWeekday)
			override = emp.TotalOverride
		}

		if daysAssigned <= 0 {
			calcErrors = append(calcErrors, CalculationError{
				FullName: name,
				Kind:     ErrInvalidPlan,
				Detail:   fmt.Sprintf("норма дней для графика %q не задана", schedule),
			})
			continue
		}

		daysWorked := float64(daysAssigned) - notWorked
		if override != nil {
			daysWorked = *override
		}
		daysWorked = clamp(daysWorked, 0, float64(daysAssigned))

		percent := decimal.NewFromFloat(daysWorked).
			Div(decimal.NewFromInt(int64(daysAssigned))).
			Mul(decimal.NewFromInt(100))
		if percent.LessThan(decimal.Zero) {
			percent = decimal.Zero
		}
		if percent.GreaterThan(decimal.NewFromInt(100)) {
			percent = decimal.NewFromInt(100)
		}
		percent = percent.Round(2)

		final := percent.
			Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromFloat(ref.KpiSum)).
			Round(2)

		results = append(results, CalculationResult{
			FullName:      name,
			ScheduleType:  schedule,
			Department:    ref.Department,
			DaysAssigned:  daysAssigned,
			DaysWorked:    daysWorked,
			DaysNotWorked: notWorked,

			LettersWeekday:  emp.LettersWeekday,
			LettersSaturday: emp.LettersSaturday,
			LettersSunday:   emp.LettersSunday,
			LettersHoliday:  emp.LettersHoliday,
			NumbersWeekday:  emp.NumbersWeekday,
			NumbersSaturday: emp.NumbersSaturday,
			NumbersSunday:   emp.NumbersSunday,
			NumbersHoliday:  emp.NumbersHoliday,

			WorkPercent: percent.InexactFloat64(),
			KpiSum:      ref.KpiSum,
			KpiFinal:    final.InexactFloat64(),
		})
	}

	// Сопоставление по именам само по себе может опустошить выборку,
	// поэтому проверка повторяется после обхода.
	if department != "" && len(results) == 0 {
		return nil, []CalculationError{noEmployeesError(department)}
	}

	return results, calcErrors
}

func normalizeSchedule(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), ScheduleShift) {
		return ScheduleShift
	}
	return ScheduleDay
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func noEmployeesError(department string) CalculationError {
	return CalculationError{
		Kind:   ErrNoEmployees,
		Detail: fmt.Sprintf("по подразделению %q сотрудники не найдены", department),
	}
}
