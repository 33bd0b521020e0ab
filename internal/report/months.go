package report

// Названия месяцев в именительном и родительном падежах для подстановки
// в шаблоны протокола.
var monthNames = [13]string{
	"",
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

var monthNamesGen = [13]string{
	"",
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

func MonthNameGen(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesGen[month]
}
