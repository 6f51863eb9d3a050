package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/paylane/payroll-backend-go/internal/config"
	"github.com/paylane/payroll-backend-go/internal/domain/payslip"
	appHTTP "github.com/paylane/payroll-backend-go/internal/handler/http"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
	"github.com/paylane/payroll-backend-go/internal/pkg/jwt"
	"github.com/paylane/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/paylane/payroll-backend-go/internal/service/auth"
	employeeService "github.com/paylane/payroll-backend-go/internal/service/employee"
	payslipService "github.com/paylane/payroll-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, recordRepo, payslipRepo)
	calculator := payslipService.NewCalculator(cfg.Payroll.FlatDeductionRate)
	payslipSvc := payslipService.NewPayslipService(
		payslipRepo,
		employeeRepo,
		recordRepo,
		calculator,
		payslip.Policy(cfg.Payroll.DefaultPolicy),
		logger,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(payslipSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		payslipHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
