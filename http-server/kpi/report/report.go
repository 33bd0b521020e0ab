package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hospital-kpi/http-server/kpi/calculate"
	"hospital-kpi/internal/report"
	"hospital-kpi/internal/service/kpi"
)

type ReportGenerator interface {
	Generate(ctx context.Context, req kpi.Request, kind report.Kind) (*report.Artifact, error)
}

// GenerateReport отдает один из пяти артефактов расчета: ведомость, выгрузку
// для бухгалтерии, протокол в xlsx и обе PDF-формы.
func GenerateReport(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.kpi.GenerateReport"

		kind, err := report.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req, err := calculate.ParseForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// На генерацию документов времени нужно больше, чем на голый расчет
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		artifact, err := gen.Generate(ctx, req, kind)
		if err != nil {
			if calculate.IsBadRequest(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("ошибка генерации отчета", "op", op, "kind", string(kind), "err", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", artifact.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+artifact.FileName)
		w.Write(artifact.Data)
	}
}
