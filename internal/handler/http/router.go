package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/middleware"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	holidayHandler HolidayHandler,
	workLocationHandler WorkLocationHandler,
	timesheetHandler TimesheetHandler,
	calendarHandler CalendarHandler,
	overviewHandler OverviewHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
				})
			})

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", userHandler.ListGroups)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.CreateGroup)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Post("/", holidayHandler.Create)
				r.Get("/", holidayHandler.ListMine)
				r.Delete("/{id}", holidayHandler.Delete)
			})

			r.Route("/public-holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListPublic)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.CreatePublic)
					r.Delete("/{id}", holidayHandler.DeletePublic)
				})
			})

			r.Route("/work-locations", func(r chi.Router) {
				r.Post("/", workLocationHandler.Set)
				r.Get("/", workLocationHandler.ListMine)
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Post("/", timesheetHandler.LogHours)
				r.Get("/", timesheetHandler.ListMine)
				r.Delete("/{id}", timesheetHandler.Delete)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", calendarHandler.Window)
				r.Get("/today", calendarHandler.Today)
			})

			r.Get("/stats/monthly", calendarHandler.MonthlyStats)

			r.Route("/overview", func(r chi.Router) {
				r.Get("/by-date", overviewHandler.ByDate)
				r.Get("/by-person", overviewHandler.ByPerson)
			})
		})
	})
	return r
}
