package calculate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"hospital-kpi/internal/service/kpi"
	"hospital-kpi/internal/timesheet"
)

const maxUploadSize = 20 << 20

type Calculator interface {
	Calculate(ctx context.Context, req kpi.Request) (*kpi.Response, error)
}

// CalculateKPI принимает multipart-форму с табелем и параметрами периода и
// возвращает пары результатов и ошибок расчета.
func CalculateKPI(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.kpi.CalculateKPI"

		req, err := ParseForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		resp, err := calc.Calculate(ctx, req)
		if err != nil {
			if IsBadRequest(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("ошибка расчета KPI", "op", op, "err", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resp)
	}
}

// ParseForm собирает kpi.Request из multipart-формы. Используется и
// обработчиком отчетов — форма у них одна.
func ParseForm(r *http.Request) (kpi.Request, error) {
	var req kpi.Request

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return req, errors.New("некорректная multipart-форма")
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return req, errors.New("не передан файл табеля")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, errors.New("не удалось прочитать файл табеля")
	}
	req.FileData = data

	req.Year, err = strconv.Atoi(r.FormValue("year"))
	if err != nil {
		return req, errors.New("не задан год")
	}
	req.Month, err = strconv.Atoi(r.FormValue("month"))
	if err != nil {
		return req, errors.New("не задан месяц")
	}

	// Нормы могут быть заданы не обе: валидирует сервис
	req.DayQuota, _ = strconv.Atoi(r.FormValue("dayQuota"))
	req.ShiftQuota, _ = strconv.Atoi(r.FormValue("shiftQuota"))
	req.Department = r.FormValue("department")

	for _, h := range r.MultipartForm.Value["holiday"] {
		req.ExtraHolidays = append(req.ExtraHolidays, h)
	}

	return req, nil
}

// IsBadRequest выделяет структурные ошибки, виноват в которых запрос, а не
// сервер: битый файл, неизвестный шаблон, плохие параметры.
func IsBadRequest(err error) bool {
	return errors.Is(err, timesheet.ErrUnsupportedFormat) ||
		errors.Is(err, timesheet.ErrUnknownTemplate) ||
		errors.Is(err, kpi.ErrInvalidParams)
}
