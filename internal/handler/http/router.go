package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/middleware"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	locationHandler LocationHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	requestHandler RequestHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Get("/oauth/google", authHandler.LoginWithGoogle)
			})
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.GetProfile)

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.ListMine)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Get("/my", requestHandler.ListMine)

				// Customer only
				r.Group(func(r chi.Router) {
					r.Use(middleware.CustomerOnly)
					r.Get("/", requestHandler.ListForCustomer)
					r.Patch("/{id}/status", requestHandler.Review)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/my", reportHandler.MyReport)

				// Customer only
				r.Group(func(r chi.Router) {
					r.Use(middleware.CustomerOnly)
					r.Get("/users/{id}", reportHandler.UserReport)
					r.Get("/team", reportHandler.TeamReport)
				})
			})

			// Customer only management surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.CustomerOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", userHandler.CreateEmployee)
					r.Get("/", userHandler.ListEmployees)
					r.Get("/{id}", userHandler.GetEmployee)
					r.Put("/{id}", userHandler.UpdateEmployee)
				})

				r.Route("/locations", func(r chi.Router) {
					r.Post("/", locationHandler.Create)
					r.Get("/", locationHandler.List)
					r.Get("/{id}", locationHandler.Get)
					r.Put("/{id}", locationHandler.Update)
					r.Delete("/{id}", locationHandler.Delete)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", shiftHandler.Create)
					r.Get("/", shiftHandler.List)
					r.Get("/{id}", shiftHandler.Get)
					r.Put("/{id}", shiftHandler.Update)
					r.Delete("/{id}", shiftHandler.Delete)
				})
			})
		})
	})
	return r
}
