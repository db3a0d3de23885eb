package http

import (
	"log/slog"
	"os"

	"github.com/brgy-portal/staff-backend-go/internal/config"
	"github.com/brgy-portal/staff-backend-go/internal/domain/user"
	"github.com/brgy-portal/staff-backend-go/internal/handler/http/middleware"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	appConfig config.AppConfig,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brgy-staff"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(appConfig.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceMark))
					r.Post("/", attendanceHandler.Mark)
					r.Post("/bulk", attendanceHandler.BulkMark)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceView))
					r.Get("/employees/{employeeID}", attendanceHandler.ListByEmployee)
					r.Get("/employees/{employeeID}/summary", attendanceHandler.GetSummary)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionScheduleView))
					r.Get("/employees/{employeeID}/weekly", scheduleHandler.GetWeekly)
					r.Get("/employees/{employeeID}/effective", scheduleHandler.GetEffective)
					r.Get("/employees/{employeeID}/overrides", scheduleHandler.ListOverrides)
					r.Get("/groups/{id}", scheduleHandler.GetGroup)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionScheduleManage))
					r.Put("/employees/{employeeID}/weekly", scheduleHandler.SetWeekly)
					r.Post("/overrides", scheduleHandler.UpsertOverride)
					r.Delete("/overrides/{id}", scheduleHandler.DeleteOverride)
					r.Post("/groups", scheduleHandler.CreateGroup)
					r.Delete("/groups/{id}", scheduleHandler.DeleteGroup)
					r.Post("/groups/{id}/assignments", scheduleHandler.AssignEmployees)
					r.Delete("/groups/{id}/assignments/{employeeID}", scheduleHandler.UnassignEmployee)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollGenerate))
					r.Post("/preview", payrollHandler.Preview)
					r.Post("/payslips", payrollHandler.Generate)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollView))
					r.Get("/payslips", payrollHandler.ListPayslips)
					r.Get("/payslips/{id}", payrollHandler.GetPayslip)
				})

				r.With(middleware.RequirePermission(user.PermissionPayrollDelete)).
					Delete("/payslips/{id}", payrollHandler.DeletePayslip)
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
