package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse-hr/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse-hr/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/cron"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/oauth"
	"github.com/workpulse-hr/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse-hr/workpulse-backend-go/internal/service/attendance"
	authService "github.com/workpulse-hr/workpulse-backend-go/internal/service/auth"
	locationService "github.com/workpulse-hr/workpulse-backend-go/internal/service/location"
	reportService "github.com/workpulse-hr/workpulse-backend-go/internal/service/report"
	requestService "github.com/workpulse-hr/workpulse-backend-go/internal/service/request"
	shiftService "github.com/workpulse-hr/workpulse-backend-go/internal/service/shift"
	userService "github.com/workpulse-hr/workpulse-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtSvc, googleSvc)
	userSvc := userService.NewUserService(userRepo, locationRepo, shiftRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, locationRepo)
	requestSvc := requestService.NewRequestService(requestRepo, userRepo)
	reportSvc := reportService.NewReportService(userRepo, shiftRepo, attendanceRepo, requestRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, userRepo, shiftRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		userHandler,
		locationHandler,
		shiftHandler,
		attendanceHandler,
		requestHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
