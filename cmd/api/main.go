package main

import (
	"fmt"
	"net/http"

	"github.com/facehr/facehr-backend-go/internal/config"
	appHTTP "github.com/facehr/facehr-backend-go/internal/handler/http"
	"github.com/facehr/facehr-backend-go/internal/pkg/database"
	"github.com/facehr/facehr-backend-go/internal/pkg/jwt"
	"github.com/facehr/facehr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facehr/facehr-backend-go/internal/service/attendance"
	dashboardService "github.com/facehr/facehr-backend-go/internal/service/dashboard"
	payrollService "github.com/facehr/facehr-backend-go/internal/service/payroll"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	ledger := postgresql.NewPayrollLedger(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		holidayRepo,
		cfg.Payroll.StandardShiftHours,
	)
	payrollSvc := payrollService.NewPayrollService(
		structureRepo,
		ledger,
		employeeRepo,
		attendanceSvc,
		cfg.Payroll.StandardShiftHours,
		cfg.Payroll.Workers,
	)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		payrollHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
