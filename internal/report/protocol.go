package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var protocolHeaders = []string{"№", "ФИО", "План KPI", "KPI, %", "KPI к выплате"}

// buildProtocolWorkbook верстает протокол комиссии в виде книги: шапка с
// реквизитами в объединенных ячейках, состав комиссии, повестка, таблица с
// итоговой строкой, постановляющая часть и подписи.
func buildProtocolWorkbook(data protocolData) ([]byte, error) {
	const op = "report.buildProtocolWorkbook"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Протокол"
	f.SetSheetName("Sheet1", sheet)

	landscape := "landscape"
	f.SetPageLayout(sheet, &excelize.PageLayoutOptions{Orientation: &landscape})

	sm := newStyleManager(f)
	titleStyle, err := sm.title()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	headerStyle, err := sm.header()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	leftStyle, err := sm.left()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	centeredStyle, err := sm.centered()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	totalStyle, err := sm.total()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lastCol := len(protocolHeaders)
	row := 1

	for _, line := range data.headerLines() {
		f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
		f.SetCellValue(sheet, cellName(1, row), line)
		f.SetCellStyle(sheet, cellName(1, row), cellName(lastCol, row), titleStyle)
		row++
	}
	row++

	f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
	f.SetCellValue(sheet, cellName(1, row), "Состав комиссии:")
	row++
	for _, m := range data.commission() {
		f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
		f.SetCellValue(sheet, cellName(1, row), fmt.Sprintf("%s — %s", m.Role, m.Name))
		row++
	}
	row++

	f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
	f.SetCellValue(sheet, cellName(1, row), "Повестка дня: "+data.agenda())
	row += 2

	// Таблица результатов
	for i, name := range protocolHeaders {
		f.SetCellValue(sheet, cellName(i+1, row), name)
	}
	f.SetCellStyle(sheet, cellName(1, row), cellName(lastCol, row), headerStyle)
	row++

	for i, r := range data.results {
		f.SetCellValue(sheet, cellName(1, row), i+1)
		f.SetCellValue(sheet, cellName(2, row), r.FullName)
		f.SetCellValue(sheet, cellName(3, row), r.KpiSum)
		f.SetCellValue(sheet, cellName(4, row), r.WorkPercent)
		f.SetCellValue(sheet, cellName(5, row), r.KpiFinal)
		f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), centeredStyle)
		f.SetCellStyle(sheet, cellName(2, row), cellName(2, row), leftStyle)
		f.SetCellStyle(sheet, cellName(3, row), cellName(lastCol, row), centeredStyle)
		row++
	}

	f.MergeCell(sheet, cellName(1, row), cellName(4, row))
	f.SetCellValue(sheet, cellName(1, row), "Итого")
	f.SetCellValue(sheet, cellName(5, row), data.total())
	f.SetCellStyle(sheet, cellName(1, row), cellName(lastCol, row), totalStyle)
	row += 2

	f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
	f.SetCellValue(sheet, cellName(1, row), data.footer())
	row += 2

	for _, line := range data.votingLines() {
		f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
		f.SetCellValue(sheet, cellName(1, row), line)
		row++
	}
	row++

	if coordinator, ok := data.coordinator(); ok {
		f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
		f.SetCellValue(sheet, cellName(1, row), signatureLine(coordinator.Role, coordinator.Name))
		row++
	}
	if data.settings.SecretaryName != "" {
		f.MergeCell(sheet, cellName(1, row), cellName(lastCol, row))
		f.SetCellValue(sheet, cellName(1, row), signatureLine("Секретарь", data.settings.SecretaryName))
	}

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func signatureLine(role, name string) string {
	return fmt.Sprintf("%s  ______________ / %s /", role, name)
}
