package storage

// KpiReference — строка справочника KPI: закрепленная сумма стимулирующих
// выплат и график работы сотрудника.
type KpiReference struct {
	FullName     string  `json:"full_name"`
	KpiSum       float64 `json:"kpi_sum"`
	ScheduleType string  `json:"schedule_type"`
	Department   string  `json:"department"`
	CategoryCode string  `json:"category_code,omitempty"`
}
