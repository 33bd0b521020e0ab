package kpi

// Коды паспортизированных ошибок расчета. Ошибки по сотрудникам не
// останавливают обход табеля, NO_EMPLOYEES возвращается единственной
// ошибкой при пустой выборке по подразделению.
type ErrorKind string

const (
	ErrDuplicate    ErrorKind = "DUPLICATE"
	ErrNoKpiMapping ErrorKind = "NO_KPI_MAPPING"
	ErrStudent      ErrorKind = "STUDENT"
	ErrInvalidPlan  ErrorKind = "INVALID_PLAN"
	ErrNoEmployees  ErrorKind = "NO_EMPLOYEES"
)

const (
	ScheduleDay   = "day"
	ScheduleShift = "shift"
)

// Код категории "студент" в справочнике: таким KPI не начисляется.
const categoryStudent = "4"

type CalculationResult struct {
	FullName      string  `json:"full_name"`
	ScheduleType  string  `json:"schedule_type"`
	Department    string  `json:"department"`
	DaysAssigned  int     `json:"days_assigned"`
	DaysWorked    float64 `json:"days_worked"`
	DaysNotWorked float64 `json:"days_not_worked"`

	// Сырые счетчики табеля, сохраняются для сверки.
	LettersWeekday  int `json:"letters_weekday"`
	LettersSaturday int `json:"letters_saturday"`
	LettersSunday   int `json:"letters_sunday"`
	LettersHoliday  int `json:"letters_holiday"`
	NumbersWeekday  int `json:"numbers_weekday"`
	NumbersSaturday int `json:"numbers_saturday"`
	NumbersSunday   int `json:"numbers_sunday"`
	NumbersHoliday  int `json:"numbers_holiday"`

	WorkPercent float64 `json:"work_percent"`
	KpiSum      float64 `json:"kpi_sum"`
	KpiFinal    float64 `json:"kpi_final"`
}

type CalculationError struct {
	FullName string    `json:"full_name,omitempty"`
	Kind     ErrorKind `json:"kind"`
	Detail   string    `json:"detail"`
}

// Request — параметры одного расчета: содержимое табеля, период, нормы дней
// по графикам и необязательные фильтр подразделения и праздники запроса.
type Request struct {
	FileData      []byte
	Year          int
	Month         int
	DayQuota      int
	ShiftQuota    int
	Department    string
	ExtraHolidays []any
}

type Response struct {
	Results []CalculationResult `json:"results"`
	Errors  []CalculationError  `json:"errors"`
}
