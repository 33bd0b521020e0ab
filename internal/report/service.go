package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hospital-kpi/internal/service/kpi"
	"hospital-kpi/internal/storage"
)

type Kind string

const (
	KindDetail      Kind = "detail"
	KindPayload     Kind = "payload"
	KindProtocol    Kind = "protocol"
	KindProtocolPDF Kind = "protocol-pdf"
	KindMinutesPDF  Kind = "minutes-pdf"
)

const (
	spreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfMIME         = "application/pdf"
)

var ErrUnknownKind = errors.New("неизвестный вид отчета")

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDetail, KindPayload, KindProtocol, KindProtocolPDF, KindMinutesPDF:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Artifact — готовый файл отчета вместе с заголовками для выдачи.
type Artifact struct {
	Data        []byte
	FileName    string
	ContentType string
}

type Calculator interface {
	CalculateWithHolidays(ctx context.Context, req kpi.Request, holidays map[int]bool) (*kpi.Response, error)
}

type SettingsStorage interface {
	GetReportSettings(ctx context.Context) (*storage.ReportSettings, error)
	GetHolidays(ctx context.Context, year, month int) ([]storage.Holiday, error)
}

type Service struct {
	calc    Calculator
	storage SettingsStorage
	fonts   fontSet
}

func NewService(calc Calculator, storage SettingsStorage, fontPath, fontPathBold string) *Service {
	return &Service{
		calc:    calc,
		storage: storage,
		fonts:   resolveFonts(fontPath, fontPathBold),
	}
}

// Generate прогоняет расчет и верстает запрошенный артефакт. Настройки
// протокола и праздники выбираются параллельно; календарь затем передается в
// расчет, чтобы не ходить за ним второй раз.
func (s *Service) Generate(ctx context.Context, req kpi.Request, kind Kind) (*Artifact, error) {
	const op = "report.Generate"

	var (
		fetched  *storage.ReportSettings
		holidays []storage.Holiday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fetched, err = s.storage.GetReportSettings(gctx)
		if err != nil {
			return fmt.Errorf("ошибка получения настроек отчета: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.storage.GetHolidays(gctx, req.Year, req.Month)
		if err != nil {
			return fmt.Errorf("ошибка получения праздников: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	settings := mergeSettings(fetched)
	holidaySet := kpi.HolidaySet(holidays, req.ExtraHolidays, req.Year, req.Month)

	resp, err := s.calc.CalculateWithHolidays(ctx, req, holidaySet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data := protocolData{
		settings:   settings,
		year:       req.Year,
		month:      req.Month,
		department: req.Department,
		date:       MeetingDate(settings, req.Year, req.Month, holidaySet),
		results:    resp.Results,
	}

	var (
		raw []byte
		ext string
	)

	switch kind {
	case KindDetail:
		raw, err = buildDetailWorkbook(resp.Results, resp.Errors)
		ext = "xlsx"
	case KindPayload:
		raw, err = buildPayloadWorkbook(resp.Results)
		ext = "xlsx"
	case KindProtocol:
		raw, err = buildProtocolWorkbook(data)
		ext = "xlsx"
	case KindProtocolPDF:
		raw, err = buildProtocolPDF(data, s.fonts)
		ext = "pdf"
	case KindMinutesPDF:
		raw, err = buildMinutesPDF(data, s.fonts)
		ext = "pdf"
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contentType := spreadsheetMIME
	if ext == "pdf" {
		contentType = pdfMIME
	}

	fileName := fmt.Sprintf("kpi_%s_%d_%02d_%s.%s",
		kind, req.Year, req.Month, time.Now().Format("20060102_150405"), ext)

	return &Artifact{Data: raw, FileName: fileName, ContentType: contentType}, nil
}
