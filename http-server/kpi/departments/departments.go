package departments

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type Departments interface {
	GetDepartments(ctx context.Context) ([]string, error)
}

// GetDepartments возвращает список подразделений из справочника KPI для
// фильтра на фронтенде.
func GetDepartments(log *slog.Logger, storage Departments) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.kpi.GetDepartments"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := storage.GetDepartments(ctx)
		if err != nil {
			log.Error("ошибка получения подразделений", "op", op, "err", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, list)
	}
}
