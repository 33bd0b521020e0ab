package calculate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hospital-kpi/internal/service/kpi"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, req kpi.Request) (*kpi.Response, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	resp, ok := args.Get(0).(*kpi.Response)
	if !ok {
		return nil, fmt.Errorf("expected *kpi.Response, got %T", args.Get(0))
	}

	return resp, args.Error(1)
}

func multipartBody(t *testing.T, fields [][2]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if withFile {
		part, err := writer.CreateFormFile("file", "tabel.xlsx")
		require.NoError(t, err)
		_, err = io.WriteString(part, "PK\x03\x04fake")
		require.NoError(t, err)
	}

	for _, kv := range fields {
		require.NoError(t, writer.WriteField(kv[0], kv[1]))
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCalculateKPI_OK(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", mock.Anything, mock.MatchedBy(func(req kpi.Request) bool {
		return req.Year == 2025 && req.Month == 1 && req.DayQuota == 20 &&
			req.Department == "Терапия" && len(req.ExtraHolidays) == 2
	})).Return(&kpi.Response{
		Results: []kpi.CalculationResult{{FullName: "Иванов Иван Иванович", KpiFinal: 90000}},
		Errors:  []kpi.CalculationError{},
	}, nil)

	body, contentType := multipartBody(t, [][2]string{
		{"year", "2025"},
		{"month", "1"},
		{"dayQuota", "20"},
		{"department", "Терапия"},
		{"holiday", "1"},
		{"holiday", "2025-01-07"},
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/kpi/calculate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	CalculateKPI(discardLogger(), mockCalc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp kpi.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Иванов Иван Иванович", resp.Results[0].FullName)

	mockCalc.AssertExpectations(t)
}

func TestCalculateKPI_MissingFile(t *testing.T) {
	body, contentType := multipartBody(t, [][2]string{
		{"year", "2025"},
		{"month", "1"},
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/kpi/calculate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	CalculateKPI(discardLogger(), new(MockCalculator))(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateKPI_MissingYear(t *testing.T) {
	body, contentType := multipartBody(t, [][2]string{
		{"month", "1"},
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/kpi/calculate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	CalculateKPI(discardLogger(), new(MockCalculator))(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateKPI_StructuralErrorIs400(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("service.kpi.Calculate: %w", kpi.ErrInvalidParams))

	body, contentType := multipartBody(t, [][2]string{
		{"year", "2025"},
		{"month", "1"},
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/kpi/calculate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	CalculateKPI(discardLogger(), mockCalc)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateKPI_InternalErrorIs500(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("db down"))

	body, contentType := multipartBody(t, [][2]string{
		{"year", "2025"},
		{"month", "1"},
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/kpi/calculate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	CalculateKPI(discardLogger(), mockCalc)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
