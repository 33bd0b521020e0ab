package mysql

import (
	"context"
	"fmt"

	"hospital-kpi/internal/storage"
)

// GetKpiReference возвращает справочник KPI, при непустом department —
// только по одному подразделению.
func (s *Storage) GetKpiReference(ctx context.Context, department string) ([]storage.KpiReference, error) {
	const op = "storage.mysql.GetKpiReference"

	baseQuery := `
        SELECT full_name, kpi_sum, schedule_type, department, IFNULL(category_code, '')
        FROM kpi_reference`

	var query string
	var args []interface{}

	if department != "" {
		query = baseQuery + ` WHERE department = ? ORDER BY full_name ASC`
		args = append(args, department)
	} else {
		query = baseQuery + ` ORDER BY full_name ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения справочника KPI: %w", op, err)
	}
	defer rows.Close()

	var refs []storage.KpiReference
	for rows.Next() {
		var ref storage.KpiReference
		err := rows.Scan(&ref.FullName, &ref.KpiSum, &ref.ScheduleType, &ref.Department, &ref.CategoryCode)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки справочника: %w", op, err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return refs, nil
}

// GetDepartments возвращает список подразделений из справочника для фильтра.
func (s *Storage) GetDepartments(ctx context.Context) ([]string, error) {
	const op = "storage.mysql.GetDepartments"

	query := `SELECT DISTINCT department FROM kpi_reference WHERE department <> '' ORDER BY department ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения подразделений: %w", op, err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования подразделения: %w", op, err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return departments, nil
}
