package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/brgy-portal/staff-backend-go/internal/config"
	appHTTP "github.com/brgy-portal/staff-backend-go/internal/handler/http"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/jwt"
	"github.com/brgy-portal/staff-backend-go/internal/repository/postgresql"
	attendanceService "github.com/brgy-portal/staff-backend-go/internal/service/attendance"
	payrollService "github.com/brgy-portal/staff-backend-go/internal/service/payroll"
	scheduleService "github.com/brgy-portal/staff-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	weeklyScheduleRepo := postgresql.NewWeeklyScheduleRepository(db)
	dutyOverrideRepo := postgresql.NewDutyOverrideRepository(db)
	groupScheduleRepo := postgresql.NewGroupScheduleRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	resolver := scheduleService.NewResolver(weeklyScheduleRepo, dutyOverrideRepo, groupScheduleRepo)
	aggregator := attendanceService.NewAggregator(attendanceRepo, resolver)
	materializer := payrollService.NewMaterializer(payslipRepo, cfg.Payroll.StoreTimeout)

	scheduleSvc := scheduleService.NewScheduleService(
		transactor,
		weeklyScheduleRepo,
		dutyOverrideRepo,
		groupScheduleRepo,
		resolver,
	)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, aggregator)
	payrollSvc := payrollService.NewPayrollService(aggregator, materializer, payslipRepo, cfg.Payroll)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port, "env", cfg.App.Env)
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}
