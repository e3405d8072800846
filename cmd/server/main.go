package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/config"
	"github.com/thakur-sujal/ERP-Portal/internal/database"
	"github.com/thakur-sujal/ERP-Portal/internal/handler"
	"github.com/thakur-sujal/ERP-Portal/internal/logger"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
	"github.com/thakur-sujal/ERP-Portal/internal/router"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"github.com/thakur-sujal/ERP-Portal/internal/validator"
	"github.com/thakur-sujal/ERP-Portal/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ERP Portal")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, studentRepo, facultyRepo, authService, log)
	studentService := service.NewStudentService(studentRepo, courseRepo)
	facultyService := service.NewFacultyService(facultyRepo)
	courseService := service.NewCourseService(courseRepo, facultyRepo, studentRepo)
	attendanceService := service.NewAttendanceService(cfg, attendanceRepo, courseRepo, facultyRepo, rdb, log)
	gradeService := service.NewGradeService(gradeRepo, courseRepo, facultyRepo, log)
	timetableService := service.NewTimetableService(timetableRepo, courseRepo, facultyRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(userService, studentService, facultyService),
		User:       handler.NewUserHandler(userService),
		Student:    handler.NewStudentHandler(studentService),
		Faculty:    handler.NewFacultyHandler(facultyService),
		Course:     handler.NewCourseHandler(courseService),
		Attendance: handler.NewAttendanceHandler(attendanceService, studentService),
		Grade:      handler.NewGradeHandler(gradeService, studentService),
		Timetable:  handler.NewTimetableHandler(timetableService),
		Analytics:  handler.NewAnalyticsHandler(analyticsService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	reconcileWorker := worker.NewReconcileWorker(courseRepo, log)
	go reconcileWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
