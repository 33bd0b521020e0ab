package mysql

import (
	"context"
	"fmt"

	"hospital-kpi/internal/storage"
)

// GetHolidays возвращает праздники производственного календаря за период.
func (s *Storage) GetHolidays(ctx context.Context, year, month int) ([]storage.Holiday, error) {
	const op = "storage.mysql.GetHolidays"

	query := `
        SELECT holiday_date, holiday_year, holiday_month
        FROM kpi_holidays
        WHERE holiday_year = ? AND holiday_month = ?
        ORDER BY holiday_date ASC`

	rows, err := s.db.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения праздничных дней: %w", op, err)
	}
	defer rows.Close()

	var holidays []storage.Holiday
	for rows.Next() {
		var h storage.Holiday
		if err := rows.Scan(&h.Date, &h.Year, &h.Month); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки праздника: %w", op, err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return holidays, nil
}
