package report

import "fmt"

// buildMinutesPDF — выписка из протокола заседания: то же содержание, что и
// в бухгалтерском протоколе, но книжная ориентация и повествовательная
// верстка вместо таблицы.
func buildMinutesPDF(data protocolData, fonts fontSet) ([]byte, error) {
	d := newDocument("P", fonts)

	header := data.headerLines()
	d.centeredLine(header[0], "B", 14)
	d.centeredLine(header[1], "B", 12)
	for _, line := range header[2:] {
		d.centeredLine(line, "", 11)
	}
	d.spacer()

	d.line("Присутствовали:")
	for _, m := range data.commission() {
		d.line(fmt.Sprintf("%s — %s", m.Role, m.Name))
	}
	d.spacer()

	d.paragraph("Слушали: " + data.agenda())
	d.spacer()

	d.line("Постановили установить выплаты:")
	for i, r := range data.results {
		d.paragraph(fmt.Sprintf(
			"%d. %s — план %s руб., выполнение %s%%, к выплате %s руб.",
			i+1, r.FullName, formatMoney(r.KpiSum), formatPercent(r.WorkPercent), formatMoney(r.KpiFinal),
		))
	}
	d.paragraph(fmt.Sprintf("Итого к выплате: %s руб.", formatMoney(data.total())))
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
