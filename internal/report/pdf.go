package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFontFamily = "report"
	pdfLineHeight = 6.0
	pdfRowHeight  = 7.0
)

// document оборачивает gofpdf: при наличии ttf-шрифта текст пишется как
// UTF-8, иначе используется встроенный Helvetica с перекодировкой в cp1251.
type document struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	family string
}

func newDocument(orientation string, fonts fontSet) *document {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	d := &document{pdf: pdf, family: "Helvetica", tr: func(s string) string { return s }}

	if fonts.regular != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", fonts.regular)
		bold := fonts.bold
		if bold == "" {
			bold = fonts.regular
		}
		pdf.AddUTF8Font(pdfFontFamily, "B", bold)
		d.family = pdfFontFamily
	} else {
		d.tr = pdf.UnicodeTranslatorFromDescriptor("cp1251")
	}

	pdf.AddPage()
	return d
}

func (d *document) setFont(style string, size float64) {
	d.pdf.SetFont(d.family, style, size)
}

func (d *document) centeredLine(text, style string, size float64) {
	d.setFont(style, size)
	d.pdf.CellFormat(0, pdfLineHeight, d.tr(text), "", 1, "C", false, 0, "")
}

func (d *document) line(text string) {
	d.setFont("", 11)
	d.pdf.CellFormat(0, pdfLineHeight, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) paragraph(text string) {
	d.setFont("", 11)
	d.pdf.MultiCell(0, pdfLineHeight, d.tr(text), "", "L", false)
}

func (d *document) spacer() {
	d.pdf.Ln(pdfLineHeight / 2)
}

func (d *document) contentWidth() float64 {
	pageW, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return pageW - left - right
}

// tableWidths распределяет ширину колонок протокольной таблицы: номер и
// денежные колонки фиксированные, остаток уходит под ФИО.
func (d *document) tableWidths() []float64 {
	content := d.contentWidth()
	fixed := []float64{12, 0, 35, 28, 38}

	var used float64
	for _, w := range fixed {
		used += w
	}
	fixed[1] = content - used
	return fixed
}

// table рисует таблицу с разбиением на страницы: если очередная строка не
// помещается по высоте, начинается новая страница и шапка перерисовывается.
func (d *document) table(headers []string, widths []float64, rows [][]string, totalRow []string) {
	_, pageH := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	limit := pageH - bottom

	drawHeader := func() {
		d.setFont("B", 10)
		for i, h := range headers {
			d.pdf.CellFormat(widths[i], pdfRowHeight, d.tr(h), "1", 0, "C", false, 0, "")
		}
		d.pdf.Ln(-1)
	}

	drawRow := func(cells []string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		d.setFont(style, 10)
		for i, c := range cells {
			align := "C"
			if i == 1 {
				align = "L"
			}
			d.pdf.CellFormat(widths[i], pdfRowHeight, d.tr(c), "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}

	drawHeader()
	for _, row := range rows {
		if d.pdf.GetY()+pdfRowHeight > limit {
			d.pdf.AddPage()
			drawHeader()
		}
		drawRow(row, false)
	}

	if totalRow != nil {
		if d.pdf.GetY()+pdfRowHeight > limit {
			d.pdf.AddPage()
			drawHeader()
		}
		drawRow(totalRow, true)
	}
}

func (d *document) bytes() ([]byte, error) {
	const op = "report.document.bytes"

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
