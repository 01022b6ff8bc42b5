package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/config"
	appHTTP "github.com/sunvolt-energy/erp-backend-go/internal/handler/http"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/jwt"
	"github.com/sunvolt-energy/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sunvolt-energy/erp-backend-go/internal/service/attendance"
	calendarService "github.com/sunvolt-energy/erp-backend-go/internal/service/calendar"
	geofenceService "github.com/sunvolt-energy/erp-backend-go/internal/service/geofence"
	leaveService "github.com/sunvolt-energy/erp-backend-go/internal/service/leave"
	policyService "github.com/sunvolt-energy/erp-backend-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingsRepo := postgresql.NewCalendarSettingsRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policySvc := policyService.NewPolicyService(policyRepo)
	calendarSvc := calendarService.NewCalendarService(holidayRepo, settingsRepo)
	geofenceSvc := geofenceService.NewGeofenceService(officeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policySvc, location)
	eligibilitySvc := leaveService.NewEligibilityService(policySvc, calendarSvc, leaveRequestRepo)
	workflowSvc := leaveService.NewWorkflowService(
		leaveRequestRepo,
		employeeRepo,
		eligibilitySvc,
		calendarSvc,
		policySvc,
		location,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(workflowSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	officeHandler := appHTTP.NewOfficeHandler(geofenceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		jwtService,
		attendanceHandler,
		leaveHandler,
		policyHandler,
		calendarHandler,
		officeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
