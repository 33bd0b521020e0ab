package storage

// ReportSettings — реквизиты протокола комиссии: шапка, состав комиссии и
// шаблоны текста с плейсхолдерами {{month}}, {{monthGen}}, {{year}},
// {{department}}.
type ReportSettings struct {
	ProtocolNumber  string                `json:"protocol_number"`
	MeetingTitle    string                `json:"meeting_title"`
	LegalPlace      string                `json:"legal_place"`
	AgendaTemplate  string                `json:"agenda_template"`
	FooterTemplate  string                `json:"footer_template"`
	Members         []CommissionMember    `json:"members"`
	SecretaryName   string                `json:"secretary_name"`
	CoordinatorRole string                `json:"coordinator_role"`
	MeetingDates    []MeetingDateOverride `json:"meeting_dates"`
}

type CommissionMember struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// MeetingDateOverride — явно заданная дата заседания для периода; если для
// (года, месяца) записи нет, берется последний рабочий день месяца.
type MeetingDateOverride struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}
