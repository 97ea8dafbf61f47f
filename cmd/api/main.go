package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffsync/staffsync-backend-go/internal/config"
	appHTTP "github.com/staffsync/staffsync-backend-go/internal/handler/http"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/database"
	"github.com/staffsync/staffsync-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffsync/staffsync-backend-go/internal/service/attendance"
	dashboardService "github.com/staffsync/staffsync-backend-go/internal/service/dashboard"
	departmentService "github.com/staffsync/staffsync-backend-go/internal/service/department"
	employeeService "github.com/staffsync/staffsync-backend-go/internal/service/employee"
	holidayService "github.com/staffsync/staffsync-backend-go/internal/service/holiday"
	"github.com/staffsync/staffsync-backend-go/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	classifier := workday.NewClassifier(holidayRepo)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, loc)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidayRepo, classifier, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		employeeHandler,
		departmentHandler,
		holidayHandler,
		attendanceHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	log.Fatal(http.ListenAndServe(addr, router))
}
