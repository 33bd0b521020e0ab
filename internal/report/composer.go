package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hospital-kpi/internal/service/kpi"
	"hospital-kpi/internal/storage"
	"hospital-kpi/internal/timesheet"
)

// Значения по умолчанию; непустые поля сохраненных настроек их перекрывают.
var defaultSettings = storage.ReportSettings{
	ProtocolNumber:  "1",
	MeetingTitle:    "заседания комиссии по распределению стимулирующих выплат (KPI)",
	LegalPlace:      "актовый зал",
	AgendaTemplate:  "Рассмотрение результатов работы сотрудников подразделения {{department}} за {{monthGen}} {{year}} года и распределение стимулирующих выплат.",
	FooterTemplate:  "Комиссия постановила: утвердить размеры стимулирующих выплат сотрудникам подразделения {{department}} по итогам {{monthGen}} {{year}} года.",
	CoordinatorRole: "председатель",
}

func mergeSettings(fetched *storage.ReportSettings) storage.ReportSettings {
	merged := defaultSettings
	if fetched == nil {
		return merged
	}
	if fetched.ProtocolNumber != "" {
		merged.ProtocolNumber = fetched.ProtocolNumber
	}
	if fetched.MeetingTitle != "" {
		merged.MeetingTitle = fetched.MeetingTitle
	}
	if fetched.LegalPlace != "" {
		merged.LegalPlace = fetched.LegalPlace
	}
	if fetched.AgendaTemplate != "" {
		merged.AgendaTemplate = fetched.AgendaTemplate
	}
	if fetched.FooterTemplate != "" {
		merged.FooterTemplate = fetched.FooterTemplate
	}
	if fetched.SecretaryName != "" {
		merged.SecretaryName = fetched.SecretaryName
	}
	if fetched.CoordinatorRole != "" {
		merged.CoordinatorRole = fetched.CoordinatorRole
	}
	merged.Members = fetched.Members
	merged.MeetingDates = fetched.MeetingDates
	return merged
}

// MeetingDate возвращает дату заседания: явное переопределение для периода,
// иначе последний рабочий день месяца (суббота, воскресенье и праздники
// пропускаются).
func MeetingDate(settings storage.ReportSettings, year, month int, holidays map[int]bool) time.Time {
	for _, o := range settings.MeetingDates {
		if o.Year == year && o.Month == month && o.Day >= 1 && o.Day <= timesheet.DaysIn(year, month) {
			return time.Date(year, time.Month(month), o.Day, 0, 0, 0, 0, time.UTC)
		}
	}

	last := timesheet.DaysIn(year, month)
	for day := last; day >= 1; day-- {
		switch timesheet.ClassifyDay(year, month, day, holidays) {
		case timesheet.DaySaturday, timesheet.DaySunday, timesheet.DayHoliday:
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	return time.Date(year, time.Month(month), last, 0, 0, 0, 0, time.UTC)
}

// FillTemplate подставляет плейсхолдеры шаблонов протокола.
func FillTemplate(text string, year, month int, department string) string {
	replacer := strings.NewReplacer(
		"{{month}}", MonthName(month),
		"{{monthGen}}", MonthNameGen(month),
		"{{year}}", strconv.Itoa(year),
		"{{department}}", department,
	)
	return replacer.Replace(text)
}

// protocolData — все, что нужно для верстки протокола и выписки: реквизиты,
// дата заседания и результаты расчета.
type protocolData struct {
	settings   storage.ReportSettings
	year       int
	month      int
	department string
	date       time.Time
	results    []kpi.CalculationResult
}

func (p protocolData) headerLines() []string {
	department := p.department
	if department == "" {
		department = "все подразделения"
	}
	return []string{
		fmt.Sprintf("Протокол № %s", p.settings.ProtocolNumber),
		p.settings.MeetingTitle,
		fmt.Sprintf("Подразделение: %s", department),
		fmt.Sprintf("%d %s %d г., %s", p.date.Day(), MonthNameGen(int(p.date.Month())), p.date.Year(), p.settings.LegalPlace),
		fmt.Sprintf("Оцениваемый период: %s %d года", MonthName(p.month), p.year),
	}
}

// commission возвращает состав комиссии по заданному порядку; члены без
// роли или имени в протокол не попадают.
func (p protocolData) commission() []storage.CommissionMember {
	var members []storage.CommissionMember
	for _, m := range p.settings.Members {
		if strings.TrimSpace(m.Role) == "" || strings.TrimSpace(m.Name) == "" {
			continue
		}
		members = append(members, m)
	}
	sort.SliceStable(members, func(i, j int) bool { return members[i].Order < members[j].Order })
	return members
}

func (p protocolData) agenda() string {
	return FillTemplate(p.settings.AgendaTemplate, p.year, p.month, p.department)
}

func (p protocolData) footer() string {
	return FillTemplate(p.settings.FooterTemplate, p.year, p.month, p.department)
}

func (p protocolData) total() float64 {
	total := decimal.Zero
	for _, r := range p.results {
		total = total.Add(decimal.NewFromFloat(r.KpiFinal))
	}
	return total.Round(2).InexactFloat64()
}

func (p protocolData) votingLines() []string {
	count := len(p.commission())
	return []string{
		fmt.Sprintf("Голосовали: «за» — %d, «против» — 0, «воздержались» — 0.", count),
		"Решение принято единогласно.",
	}
}

// coordinator подбирает подписанта по вхождению роли-координатора.
func (p protocolData) coordinator() (storage.CommissionMember, bool) {
	role := strings.ToLower(p.settings.CoordinatorRole)
	if role == "" {
		return storage.CommissionMember{}, false
	}
	for _, m := range p.commission() {
		if strings.Contains(strings.ToLower(m.Role), role) {
			return m, true
		}
	}
	return storage.CommissionMember{}, false
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
