package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestLoadGrid_Modern(t *testing.T) {
	data := xlsxBytes(t, [][]string{
		{"Employee", "01", "02"},
		{"Иванов Иван Иванович", "8", "Б"},
	})

	grid, err := LoadGrid(data)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(grid), 2)
	assert.Equal(t, "Employee", grid[0][0])
	assert.Equal(t, "Иванов Иван Иванович", grid[1][0])
}

func TestLoadGrid_ZipSignatureDetected(t *testing.T) {
	data := xlsxBytes(t, [][]string{{"ФИО"}})

	require.True(t, hasZipSignature(data))

	_, err := LoadGrid(data)
	assert.NoError(t, err)
}

func TestLoadGrid_UnknownSignature(t *testing.T) {
	garbage := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

	_, err := LoadGrid(garbage)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadGrid_EmptyInput(t *testing.T) {
	_, err := LoadGrid(nil)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOleSignatureDetected(t *testing.T) {
	data := append([]byte{}, oleSignature...)
	data = append(data, make([]byte, 512)...)

	assert.True(t, hasPrefix(data, oleSignature))
	assert.False(t, hasZipSignature(data))
}
