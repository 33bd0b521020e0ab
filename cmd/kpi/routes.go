package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "hospital-kpi/http-server/admin/get"
	"hospital-kpi/http-server/kpi/calculate"
	"hospital-kpi/http-server/kpi/departments"
	genreport "hospital-kpi/http-server/kpi/report"
	"hospital-kpi/internal/config"
	"hospital-kpi/internal/middleware/auth"
	"hospital-kpi/internal/report"
	"hospital-kpi/internal/service/kpi"
	"hospital-kpi/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, kpiService *kpi.Service, reportService *report.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Расчет KPI по табелю
	router.Post("/api/kpi/calculate", calculate.CalculateKPI(log, kpiService))

	// Пять артефактов одного расчета: detail, payload, protocol, protocol-pdf, minutes-pdf
	router.Post("/api/kpi/report/{kind}", genreport.GenerateReport(log, reportService))

	// Список подразделений для фильтра
	router.Get("/api/kpi/departments", departments.GetDepartments(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/reference", getadmin.GetKpiReferenceAdmin(log, storage))
	adminRouter.Get("/settings", getadmin.GetReportSettingsAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
