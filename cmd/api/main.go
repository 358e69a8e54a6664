package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/asistencia-cl/asistencia-backend-go/internal/bootstrap"
	"github.com/asistencia-cl/asistencia-backend-go/internal/config"
	appHTTP "github.com/asistencia-cl/asistencia-backend-go/internal/handler/http"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/geocode"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistencia-cl/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistencia-cl/asistencia-backend-go/internal/service/attendance"
	authService "github.com/asistencia-cl/asistencia-backend-go/internal/service/auth"
	reportService "github.com/asistencia-cl/asistencia-backend-go/internal/service/report"
	workerService "github.com/asistencia-cl/asistencia-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "asistencia-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ledgerRepo := postgresql.NewLedgerRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	if err := bootstrap.Run(context.Background(), logger, db, adminRepo, workerRepo, cfg.Bootstrap); err != nil {
		log.Fatal("Failed to bootstrap database: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	geocoder := geocode.NewClient(cfg.Geocode)

	attendanceSvc := attendanceService.NewAttendanceService(db, ledgerRepo, workerRepo, geocoder, cfg.Attendance.MinInterval)
	authSvc := authService.NewAuthService(db, adminRepo, jwtService)
	workerSvc := workerService.NewWorkerService(workerRepo)
	reportSvc := reportService.NewReportService(ledgerRepo)

	healthHandler := appHTTP.NewHealthHandler(db)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	authHandler := appHTTP.NewAuthHandler(authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		healthHandler,
		attendanceHandler,
		authHandler,
		workerHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
