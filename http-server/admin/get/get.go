package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"hospital-kpi/internal/storage"
)

type AdminStorage interface {
	GetKpiReference(ctx context.Context, department string) ([]storage.KpiReference, error)
	GetReportSettings(ctx context.Context) (*storage.ReportSettings, error)
}

// GetKpiReferenceAdmin отдает справочник KPI целиком или по подразделению.
func GetKpiReferenceAdmin(log *slog.Logger, adm AdminStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.GetKpiReferenceAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		refs, err := adm.GetKpiReference(ctx, r.URL.Query().Get("department"))
		if err != nil {
			log.Error("ошибка получения справочника KPI", "op", op, "err", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, refs)
	}
}

// GetReportSettingsAdmin отдает сохраненные реквизиты протокола.
func GetReportSettingsAdmin(log *slog.Logger, adm AdminStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.GetReportSettingsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := adm.GetReportSettings(ctx)
		if err != nil {
			log.Error("ошибка получения настроек отчета", "op", op, "err", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, settings)
	}
}
