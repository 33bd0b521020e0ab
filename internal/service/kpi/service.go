package kpi

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hospital-kpi/internal/storage"
	"hospital-kpi/internal/timesheet"
)

// ErrInvalidParams — структурная ошибка параметров запроса; обработчики
// отдают по ней 400 вместо 500.
var ErrInvalidParams = errors.New("некорректные параметры расчета")

type CalcStorage interface {
	GetHolidays(ctx context.Context, year, month int) ([]storage.Holiday, error)
	GetKpiReference(ctx context.Context, department string) ([]storage.KpiReference, error)
}

type Service struct {
	storage CalcStorage
}

func NewService(storage CalcStorage) *Service {
	return &Service{storage: storage}
}

// Calculate выполняет один сквозной расчет: табель -> счетчики -> KPI.
// Справочник и праздники выбираются параллельно, разбор файла идет в этой же
// горутине.
func (s *Service) Calculate(ctx context.Context, req Request) (*Response, error) {
	const op = "service.kpi.Calculate"

	if err := validate(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		holidays []storage.Holiday
		refs     []storage.KpiReference
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays, err = s.storage.GetHolidays(gctx, req.Year, req.Month)
		if err != nil {
			return fmt.Errorf("ошибка получения праздников: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		refs, err = s.storage.GetKpiReference(gctx, req.Department)
		if err != nil {
			return fmt.Errorf("ошибка получения справочника KPI: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	holidaySet := HolidaySet(holidays, req.ExtraHolidays, req.Year, req.Month)

	resp, err := run(req, refs, holidaySet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// CalculateWithHolidays — тот же расчет, но с уже собранным множеством
// праздников: вызывающий сходил за календарем сам, и второй запрос к нему
// не нужен. Из хранилища выбирается только справочник KPI.
func (s *Service) CalculateWithHolidays(ctx context.Context, req Request, holidaySet map[int]bool) (*Response, error) {
	const op = "service.kpi.CalculateWithHolidays"

	if err := validate(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refs, err := s.storage.GetKpiReference(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения справочника KPI: %w", op, err)
	}

	resp, err := run(req, refs, holidaySet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// run — общий хвост расчета: табель -> счетчики -> KPI.
func run(req Request, refs []storage.KpiReference, holidaySet map[int]bool) (*Response, error) {
	grid, err := timesheet.LoadGrid(req.FileData)
	if err != nil {
		return nil, err
	}

	employees, err := timesheet.ParseRoster(grid, req.Year, req.Month, holidaySet)
	if err != nil {
		return nil, err
	}

	results, calcErrors := Compute(employees, refs, req.DayQuota, req.ShiftQuota, req.Department)

	// В JSON должны уходить массивы, а не null
	if results == nil {
		results = []CalculationResult{}
	}
	if calcErrors == nil {
		calcErrors = []CalculationError{}
	}

	return &Response{Results: results, Errors: calcErrors}, nil
}

// HolidaySet объединяет праздники календаря с праздниками из запроса и
// убирает дубли. Множество действительно только внутри (год, месяц).
func HolidaySet(persisted []storage.Holiday, extra []any, year, month int) map[int]bool {
	set := timesheet.NormalizeHolidays(extra, year, month)
	for _, h := range persisted {
		if h.Year != year || h.Month != month {
			continue
		}
		day := h.Date.Day()
		if day >= 1 && day <= 31 {
			set[day] = true
		}
	}
	return set
}

func validate(req Request) error {
	if len(req.FileData) == 0 {
		return fmt.Errorf("%w: не передан файл табеля", ErrInvalidParams)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: год вне допустимого диапазона", ErrInvalidParams)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: месяц вне допустимого диапазона", ErrInvalidParams)
	}
	if req.DayQuota <= 0 && req.ShiftQuota <= 0 {
		return fmt.Errorf("%w: нормы дней по обоим графикам не заданы", ErrInvalidParams)
	}
	return nil
}
