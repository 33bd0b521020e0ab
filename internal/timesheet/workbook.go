package timesheet

import (
	"bytes"
	"errors"
	"fmt"

	xls "github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("файл должен быть в формате xls или xlsx")

// Сигнатура OLE-контейнера (старый бинарный xls).
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Сигнатуры zip-архива (xlsx), включая пустой и spanned варианты.
var zipSignatures = [][]byte{
	{0x50, 0x4B, 0x03, 0x04},
	{0x50, 0x4B, 0x05, 0x06},
	{0x50, 0x4B, 0x07, 0x08},
}

// LoadGrid определяет формат по первым байтам файла и возвращает первый лист
// как матрицу строк. Старый xls перекодируется во внутреннее представление
// xlsx, чтобы дальше весь разбор шел по одному пути.
func LoadGrid(data []byte) ([][]string, error) {
	const op = "timesheet.LoadGrid"

	switch {
	case hasPrefix(data, oleSignature):
		return loadLegacy(data)
	case hasZipSignature(data):
		return loadModern(data)
	}

	// Неизвестная сигнатура: пробуем оба пути, потом сдаемся.
	grid, err := loadModern(data)
	if err == nil {
		return grid, nil
	}
	grid, err = loadLegacy(data)
	if err == nil {
		return grid, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedFormat)
}

func hasPrefix(data, sig []byte) bool {
	return len(data) >= len(sig) && bytes.Equal(data[:len(sig)], sig)
}

func hasZipSignature(data []byte) bool {
	for _, sig := range zipSignatures {
		if hasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func loadModern(data []byte) ([][]string, error) {
	const op = "timesheet.loadModern"

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: в книге нет листов", op)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

// loadLegacy читает старый xls (выгрузки из кадровой системы приходят в
// windows-1251, но попадаются и в utf-8) и переписывает его в xlsx-книгу.
func loadLegacy(data []byte) ([][]string, error) {
	const op = "timesheet.loadLegacy"

	wb, err := xls.OpenReader(bytes.NewReader(data), "windows-1251")
	if err != nil {
		wb, err = xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%s: в книге нет листов", op)
	}

	f := excelize.NewFile()
	defer f.Close()
	target := f.GetSheetName(0)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < row.LastCol(); j++ {
			val := row.Col(j)
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			if err := f.SetCellValue(target, cell, val); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	rows, err := f.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}
