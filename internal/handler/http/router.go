package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/staffsync/staffsync-backend-go/internal/config"
)

func NewRouter(
	cfg config.AppConfig,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	holidayHandler HolidayHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffsync"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.ListDepartments)
			r.Post("/", departmentHandler.CreateDepartment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", departmentHandler.GetDepartment)
				r.Put("/", departmentHandler.UpdateDepartment)
				r.Delete("/", departmentHandler.DeleteDepartment)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.ListHolidays)
			r.Post("/", holidayHandler.CreateHoliday)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", holidayHandler.GetHoliday)
				r.Put("/", holidayHandler.UpdateHoliday)
				r.Delete("/", holidayHandler.DeleteHoliday)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListAttendance)
			r.Post("/", attendanceHandler.CreateAttendance)
			r.Delete("/{id}", attendanceHandler.DeleteAttendance)
			r.Get("/calendar", attendanceHandler.GetCalendar)
			r.Route("/mark", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetMarkPage)
				r.Post("/", attendanceHandler.BulkMarkAttendance)
			})
		})

		r.Get("/dashboard", dashboardHandler.GetOverview)
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
