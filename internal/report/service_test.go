package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hospital-kpi/internal/service/kpi"
	"hospital-kpi/internal/storage"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) CalculateWithHolidays(ctx context.Context, req kpi.Request, holidays map[int]bool) (*kpi.Response, error) {
	args := m.Called(ctx, req, holidays)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	resp, ok := args.Get(0).(*kpi.Response)
	if !ok {
		return nil, fmt.Errorf("expected *kpi.Response, got %T", args.Get(0))
	}

	return resp, args.Error(1)
}

type MockSettingsStorage struct {
	mock.Mock
}

func (m *MockSettingsStorage) GetReportSettings(ctx context.Context) (*storage.ReportSettings, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	settings, ok := args.Get(0).(*storage.ReportSettings)
	if !ok {
		return nil, fmt.Errorf("expected *storage.ReportSettings, got %T", args.Get(0))
	}

	return settings, args.Error(1)
}

func (m *MockSettingsStorage) GetHolidays(ctx context.Context, year, month int) ([]storage.Holiday, error) {
	args := m.Called(ctx, year, month)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	holidays, ok := args.Get(0).([]storage.Holiday)
	if !ok {
		return nil, fmt.Errorf("expected []storage.Holiday, got %T", args.Get(0))
	}

	return holidays, args.Error(1)
}

func newTestService(t *testing.T) (*Service, *MockCalculator, *MockSettingsStorage) {
	t.Helper()

	mockCalc := new(MockCalculator)
	mockStorage := new(MockSettingsStorage)
	service := NewService(mockCalc, mockStorage, "", "")
	return service, mockCalc, mockStorage
}

func calcRequest() kpi.Request {
	return kpi.Request{
		FileData:   []byte("PK\x03\x04"),
		Year:       2025,
		Month:      1,
		DayQuota:   20,
		Department: "Терапия",
	}
}

func TestGenerate_DetailWorkbook(t *testing.T) {
	service, mockCalc, mockStorage := newTestService(t)

	mockStorage.On("GetReportSettings", mock.Anything).Return(nil, nil)
	mockStorage.On("GetHolidays", mock.Anything, 2025, 1).Return([]storage.Holiday{}, nil)
	mockCalc.On("CalculateWithHolidays", mock.Anything, mock.Anything, mock.Anything).Return(&kpi.Response{
		Results: []kpi.CalculationResult{{FullName: "Иванов Иван Иванович", KpiFinal: 90000}},
	}, nil)

	artifact, err := service.Generate(context.Background(), calcRequest(), KindDetail)

	require.NoError(t, err)
	assert.Equal(t, spreadsheetMIME, artifact.ContentType)
	assert.True(t, strings.HasPrefix(artifact.FileName, "kpi_detail_2025_01_"))
	assert.True(t, strings.HasSuffix(artifact.FileName, ".xlsx"))
	assert.NotEmpty(t, artifact.Data)

	mockCalc.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestGenerate_ProtocolPDF(t *testing.T) {
	service, mockCalc, mockStorage := newTestService(t)

	mockStorage.On("GetReportSettings", mock.Anything).Return(&storage.ReportSettings{
		ProtocolNumber: "5",
		SecretaryName:  "Кузнецова О.В.",
	}, nil)
	mockStorage.On("GetHolidays", mock.Anything, 2025, 1).Return([]storage.Holiday{}, nil)
	mockCalc.On("CalculateWithHolidays", mock.Anything, mock.Anything, mock.Anything).Return(&kpi.Response{
		Results: []kpi.CalculationResult{{FullName: "Иванов Иван Иванович", KpiSum: 100000, WorkPercent: 90, KpiFinal: 90000}},
	}, nil)

	artifact, err := service.Generate(context.Background(), calcRequest(), KindProtocolPDF)

	require.NoError(t, err)
	assert.Equal(t, pdfMIME, artifact.ContentType)
	assert.True(t, strings.HasSuffix(artifact.FileName, ".pdf"))
	assert.Equal(t, "%PDF", string(artifact.Data[:4]))
}

func TestGenerate_HolidaysFetchedOnceAndPassedToCalculation(t *testing.T) {
	service, mockCalc, mockStorage := newTestService(t)

	mockStorage.On("GetReportSettings", mock.Anything).Return(nil, nil)
	mockStorage.On("GetHolidays", mock.Anything, 2025, 1).Return([]storage.Holiday{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Year: 2025, Month: 1},
	}, nil)
	mockCalc.On("CalculateWithHolidays", mock.Anything, mock.Anything,
		mock.MatchedBy(func(holidays map[int]bool) bool { return holidays[1] })).
		Return(&kpi.Response{
			Results: []kpi.CalculationResult{{FullName: "Иванов Иван Иванович", KpiFinal: 90000}},
		}, nil)

	_, err := service.Generate(context.Background(), calcRequest(), KindDetail)

	require.NoError(t, err)
	mockStorage.AssertNumberOfCalls(t, "GetHolidays", 1)
	mockCalc.AssertExpectations(t)
}

func TestGenerate_CalculationErrorPropagated(t *testing.T) {
	service, mockCalc, mockStorage := newTestService(t)

	mockStorage.On("GetReportSettings", mock.Anything).Return(nil, nil).Maybe()
	mockStorage.On("GetHolidays", mock.Anything, 2025, 1).Return([]storage.Holiday{}, nil).Maybe()
	mockCalc.On("CalculateWithHolidays", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("service.kpi.Calculate: %w", kpi.ErrInvalidParams))

	_, err := service.Generate(context.Background(), calcRequest(), KindDetail)

	assert.ErrorIs(t, err, kpi.ErrInvalidParams)
}
