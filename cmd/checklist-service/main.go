package main

import (
	"fmt"
	"os"

	"checklist-service/internal/auth"
	"checklist-service/internal/config"
	"checklist-service/internal/db"
	httphandler "checklist-service/internal/http"
	"checklist-service/internal/http/middleware"
	"checklist-service/internal/logger"
	"checklist-service/internal/repository"
	"checklist-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	scopeRepo := repository.NewScopeRepository(database)
	userRepo := repository.NewUserRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	locationRepo := repository.NewLocationRepository(database)
	reportRepo := repository.NewReportRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	attendanceRepo := repository.NewAttendanceRepository(database)
	penaltyRepo := repository.NewPenaltyRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)
	ritasiRepo := repository.NewRitasiRepository(database)
	jobMixRepo := repository.NewJobMixRepository(database)

	tokens := auth.NewTokens(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	authService := service.NewAuthService(userRepo, tokens)
	reportService := service.NewReportService(scopeRepo, reportRepo, vehicleRepo, userRepo, feedbackRepo)
	taskService := service.NewTaskService(scopeRepo, taskRepo, reportRepo, vehicleRepo)
	attendanceService := service.NewAttendanceService(scopeRepo, attendanceRepo)
	penaltyService := service.NewPenaltyService(scopeRepo, penaltyRepo, userRepo)
	feedbackService := service.NewFeedbackService(scopeRepo, feedbackRepo)
	ritasiService := service.NewRitasiService(scopeRepo, ritasiRepo, vehicleRepo)
	adminService := service.NewAdminService(scopeRepo, userRepo, vehicleRepo, locationRepo, jobMixRepo)
	exportService := service.NewExportService(scopeRepo, reportRepo, taskRepo, cfg.Export.MaxRangeDays)

	handler := httphandler.NewHandler(
		authService,
		reportService,
		taskService,
		attendanceService,
		penaltyService,
		feedbackService,
		ritasiService,
		adminService,
		exportService,
		log,
	)
	router := httphandler.NewRouter(handler, middleware.Auth(tokens), cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting checklist service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
