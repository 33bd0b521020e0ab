package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"hospital-kpi/internal/service/kpi"
)

var detailHeaders = []string{
	"№", "ФИО", "График", "Подразделение", "Норма дней", "Отработано", "Не отработано",
	"Буквы (будни)", "Буквы (сб)", "Буквы (вс)", "Буквы (праздн.)",
	"Числа (будни)", "Числа (сб)", "Числа (вс)", "Числа (праздн.)",
	"Выполнение, %", "Сумма KPI", "К выплате",
}

// buildDetailWorkbook формирует развернутую ведомость расчета; при наличии
// ошибок добавляется отдельный лист.
func buildDetailWorkbook(results []kpi.CalculationResult, calcErrors []kpi.CalculationError) ([]byte, error) {
	const op = "report.buildDetailWorkbook"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Расчет KPI"
	f.SetSheetName("Sheet1", sheet)

	sm := newStyleManager(f)
	headerStyle, err := sm.header()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, name := range detailHeaders {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(detailHeaders), 1), headerStyle)

	for i, r := range results {
		row := i + 2
		values := []interface{}{
			i + 1, r.FullName, scheduleLabel(r.ScheduleType), r.Department,
			r.DaysAssigned, r.DaysWorked, r.DaysNotWorked,
			r.LettersWeekday, r.LettersSaturday, r.LettersSunday, r.LettersHoliday,
			r.NumbersWeekday, r.NumbersSaturday, r.NumbersSunday, r.NumbersHoliday,
			r.WorkPercent, r.KpiSum, r.KpiFinal,
		}
		for col, v := range values {
			f.SetCellValue(sheet, cellName(col+1, row), v)
		}
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "R", 13)

	if len(calcErrors) > 0 {
		if err := addErrorSheet(f, sm, calcErrors); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func addErrorSheet(f *excelize.File, sm *styleManager, calcErrors []kpi.CalculationError) error {
	sheet := "Ошибки"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headerStyle, err := sm.header()
	if err != nil {
		return err
	}

	headers := []string{"ФИО", "Код", "Описание"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for i, e := range calcErrors {
		row := i + 2
		f.SetCellValue(sheet, cellName(1, row), e.FullName)
		f.SetCellValue(sheet, cellName(2, row), string(e.Kind))
		f.SetCellValue(sheet, cellName(3, row), e.Detail)
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "C", "C", 50)
	return nil
}

// buildPayloadWorkbook формирует выгрузку для бухгалтерской системы: только
// номер, ФИО и сумма, округленная вверх до рубля.
func buildPayloadWorkbook(results []kpi.CalculationResult) ([]byte, error) {
	const op = "report.buildPayloadWorkbook"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Выгрузка"
	f.SetSheetName("Sheet1", sheet)

	sm := newStyleManager(f)
	headerStyle, err := sm.header()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headers := []string{"№", "ФИО", "Сумма"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, cellName(1, row), i+1)
		f.SetCellValue(sheet, cellName(2, row), r.FullName)
		// Округление вверх до целого рубля — требование принимающей системы.
		f.SetCellValue(sheet, cellName(3, row), decimal.NewFromFloat(r.KpiFinal).Ceil().IntPart())
	}

	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func scheduleLabel(schedule string) string {
	switch schedule {
	case kpi.ScheduleShift:
		return "сменный"
	default:
		return "дневной"
	}
}
