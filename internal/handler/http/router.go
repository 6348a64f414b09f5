package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/rutvikveer9289-cyber/HRMS/internal/config"
)

func NewRouter(
	cfg config.AppConfig,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-reconciler"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Get("/export", attendanceHandler.Export)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.GetStats)
			r.Get("/daily", dashboardHandler.GetDailySeries)
			r.Get("/aggregate", dashboardHandler.GetAggregate)
		})

		r.Get("/employees", employeeHandler.List)
		r.Get("/holidays", holidayHandler.List)
		r.Get("/events", eventsHandler.Stream)
		r.Get("/status", dashboardHandler.GetStatus)
		r.Post("/refresh", attendanceHandler.Refresh)
	})
	return r
}
