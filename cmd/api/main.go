package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worktrack/worktrack-backend-go/internal/config"
	appHTTP "github.com/worktrack/worktrack-backend-go/internal/handler/http"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/jwt"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/oauth"
	"github.com/worktrack/worktrack-backend-go/internal/repository/postgresql"
	authService "github.com/worktrack/worktrack-backend-go/internal/service/auth"
	calendarService "github.com/worktrack/worktrack-backend-go/internal/service/calendarview"
	holidayService "github.com/worktrack/worktrack-backend-go/internal/service/holiday"
	overviewService "github.com/worktrack/worktrack-backend-go/internal/service/overview"
	statsService "github.com/worktrack/worktrack-backend-go/internal/service/stats"
	timesheetService "github.com/worktrack/worktrack-backend-go/internal/service/timesheet"
	userService "github.com/worktrack/worktrack-backend-go/internal/service/user"
	workLocationService "github.com/worktrack/worktrack-backend-go/internal/service/worklocation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	publicHolidayRepo := postgresql.NewPublicHolidayRepository(db)
	workLocationRepo := postgresql.NewWorkLocationRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(userRepo, groupRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, publicHolidayRepo)
	workLocationSvc := workLocationService.NewWorkLocationService(workLocationRepo, holidayRepo, publicHolidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo)
	calendarSvc := calendarService.NewCalendarService(holidayRepo, publicHolidayRepo, workLocationRepo)
	statsSvc := statsService.NewStatsService(timesheetRepo, holidayRepo, publicHolidayRepo)
	overviewSvc := overviewService.NewOverviewService(holidayRepo, publicHolidayRepo, workLocationRepo, userRepo, groupRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	workLocationHandler := appHTTP.NewWorkLocationHandler(workLocationSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc, statsSvc)
	overviewHandler := appHTTP.NewOverviewHandler(overviewSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		authHandler,
		userHandler,
		holidayHandler,
		workLocationHandler,
		timesheetHandler,
		calendarHandler,
		overviewHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
