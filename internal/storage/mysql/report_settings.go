package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hospital-kpi/internal/storage"
)

// GetReportSettings возвращает реквизиты протокола вместе с составом комиссии
// и переопределениями дат заседаний. Если запись не заведена — nil без
// ошибки, сервис подставит значения по умолчанию.
func (s *Storage) GetReportSettings(ctx context.Context) (*storage.ReportSettings, error) {
	const op = "storage.mysql.GetReportSettings"

	query := `
        SELECT id, protocol_number, meeting_title, legal_place,
               agenda_template, footer_template, secretary_name, coordinator_role
        FROM kpi_report_settings
        ORDER BY id DESC
        LIMIT 1`

	var id int64
	var settings storage.ReportSettings
	err := s.db.QueryRowContext(ctx, query).Scan(
		&id,
		&settings.ProtocolNumber,
		&settings.MeetingTitle,
		&settings.LegalPlace,
		&settings.AgendaTemplate,
		&settings.FooterTemplate,
		&settings.SecretaryName,
		&settings.CoordinatorRole,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения настроек отчета: %w", op, err)
	}

	members, err := s.getCommissionMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	settings.Members = members

	dates, err := s.getMeetingDates(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	settings.MeetingDates = dates

	return &settings, nil
}

func (s *Storage) getCommissionMembers(ctx context.Context, settingsID int64) ([]storage.CommissionMember, error) {
	const op = "storage.mysql.getCommissionMembers"

	query := `
        SELECT member_role, member_name, sort_order
        FROM kpi_commission_members
        WHERE settings_id = ?
        ORDER BY sort_order ASC, member_name ASC`

	rows, err := s.db.QueryContext(ctx, query, settingsID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения состава комиссии: %w", op, err)
	}
	defer rows.Close()

	var members []storage.CommissionMember
	for rows.Next() {
		var m storage.CommissionMember
		if err := rows.Scan(&m.Role, &m.Name, &m.Order); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования члена комиссии: %w", op, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return members, nil
}

func (s *Storage) getMeetingDates(ctx context.Context, settingsID int64) ([]storage.MeetingDateOverride, error) {
	const op = "storage.mysql.getMeetingDates"

	query := `
        SELECT meeting_year, meeting_month, meeting_day
        FROM kpi_meeting_dates
        WHERE settings_id = ?`

	rows, err := s.db.QueryContext(ctx, query, settingsID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения дат заседаний: %w", op, err)
	}
	defer rows.Close()

	var dates []storage.MeetingDateOverride
	for rows.Next() {
		var d storage.MeetingDateOverride
		if err := rows.Scan(&d.Year, &d.Month, &d.Day); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования даты заседания: %w", op, err)
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dates, nil
}
