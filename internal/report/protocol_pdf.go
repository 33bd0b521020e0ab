package report

import "fmt"

// buildProtocolPDF — бухгалтерский протокол в альбомной ориентации с
// табличной частью.
func buildProtocolPDF(data protocolData, fonts fontSet) ([]byte, error) {
	d := newDocument("L", fonts)

	header := data.headerLines()
	d.centeredLine(header[0], "B", 14)
	d.centeredLine(header[1], "B", 12)
	for _, line := range header[2:] {
		d.centeredLine(line, "", 11)
	}
	d.spacer()

	d.line("Состав комиссии:")
	for _, m := range data.commission() {
		d.line(fmt.Sprintf("%s — %s", m.Role, m.Name))
	}
	d.spacer()

	d.paragraph("Повестка дня: " + data.agenda())
	d.spacer()

	widths := d.tableWidths()
	rows := make([][]string, 0, len(data.results))
	for i, r := range data.results {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.FullName,
			formatMoney(r.KpiSum),
			formatPercent(r.WorkPercent),
			formatMoney(r.KpiFinal),
		})
	}
	totalRow := []string{"", "Итого", "", "", formatMoney(data.total())}
	d.table(protocolHeaders, widths, rows, totalRow)
	d.spacer()

	d.paragraph(data.footer())
	d.spacer()

	for _, line := range data.votingLines() {
		d.line(line)
	}
	d.spacer()
	d.spacer()

	if coordinator, ok := data.coordinator(); ok {
		d.line(signatureLine(coordinator.Role, coordinator.Name))
	}
	if data.settings.SecretaryName != "" {
		d.line(signatureLine("Секретарь", data.settings.SecretaryName))
	}

	return d.bytes()
}
