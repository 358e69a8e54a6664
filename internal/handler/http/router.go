package http

import (
	"log/slog"
	"os"

	"github.com/asistencia-cl/asistencia-backend-go/internal/config"
	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	healthHandler *HealthHandler,
	attendanceHandler *AttendanceHandler,
	authHandler *AuthHandler,
	workerHandler *WorkerHandler,
	reportHandler *ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		// Public: the check-in kiosk is unauthenticated.
		r.Post("/attendance", attendanceHandler.Submit)
		r.Get("/attendance/status/{rut}", attendanceHandler.Status)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/attendance/history", attendanceHandler.History)
			r.Get("/attendance/months", attendanceHandler.Months)

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Put("/{rut}", workerHandler.Upsert)
				r.Delete("/{rut}", workerHandler.Delete)
			})

			r.Get("/reports/attendance", reportHandler.ExportAttendance)
		})
	})

	return r
}
