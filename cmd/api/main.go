package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/hraxis/hr-backend-go/internal/config"
	appHTTP "github.com/hraxis/hr-backend-go/internal/handler/http"
	"github.com/hraxis/hr-backend-go/internal/pkg/cron"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/pkg/jwt"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
	authService "github.com/hraxis/hr-backend-go/internal/service/auth"
	employeeService "github.com/hraxis/hr-backend-go/internal/service/employee"
	leaveService "github.com/hraxis/hr-backend-go/internal/service/leave"
	payrollService "github.com/hraxis/hr-backend-go/internal/service/payroll"
	salaryService "github.com/hraxis/hr-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryComponentsRepo := postgresql.NewSalaryComponentsRepository(db)
	salaryRevisionRepo := postgresql.NewSalaryRevisionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveAccrualRepo := postgresql.NewLeaveAccrualRepository(db)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(db, userRepo, employeeRepo, jwtService, logger)
	employeeSvc := employeeService.NewService(db, employeeRepo, leaveBalanceRepo, leaveAccrualRepo, logger)
	salarySvc := salaryService.NewService(db, salaryComponentsRepo, salaryRevisionRepo, employeeRepo, logger)
	payrollSvc := payrollService.NewService(db, payrollRepo, salaryComponentsRepo, employeeRepo, logger)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, leaveBalanceRepo, employeeRepo, logger)
	accrualSvc := leaveService.NewAccrualService(db, leaveAccrualRepo, leaveBalanceRepo, logger)

	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("leave-accrual", cfg.Accrual.CheckInterval, func(ctx context.Context) error {
		_, err := accrualSvc.Run(ctx)
		return err
	})

	router := appHTTP.NewRouter(logger, jwtService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Salary:   appHTTP.NewSalaryHandler(salarySvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc, accrualSvc),
	})

	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
