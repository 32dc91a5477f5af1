package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/config"
	"github.com/registra-edu/registra-backend/internal/database"
	"github.com/registra-edu/registra-backend/internal/handler"
	"github.com/registra-edu/registra-backend/internal/logger"
	"github.com/registra-edu/registra-backend/internal/mailer"
	"github.com/registra-edu/registra-backend/internal/repository"
	"github.com/registra-edu/registra-backend/internal/router"
	"github.com/registra-edu/registra-backend/internal/service"
	"github.com/registra-edu/registra-backend/internal/validator"
	"github.com/registra-edu/registra-backend/internal/worker"
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
		Msg("Starting Registra Backend")

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
	lookupRepo := repository.NewLookupRepository(pool)
	semesterRepo := repository.NewSemesterRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	offeringRepo := repository.NewOfferingRepository(pool)
	lectureRepo := repository.NewLectureRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	notifRepo := repository.NewNotificationRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	lookupService := service.NewLookupService(lookupRepo, rdb, cfg.LookupCacheTTL, log)
	semesterService := service.NewSemesterService(semesterRepo)
	courseService := service.NewCourseService(courseRepo)
	studentService := service.NewStudentService(studentRepo, cfg.DefaultActor)
	offeringService := service.NewOfferingService(offeringRepo)
	lectureService := service.NewLectureService(lectureRepo, lookupRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	attendanceService := service.NewAttendanceService(pool, rdb, lectureRepo, attendanceRepo,
		courseRepo, studentRepo, notifRepo, cfg.DefaultActor, log)
	gradeService := service.NewGradeService(pool, lectureRepo, gradeRepo, lookupRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Attendance: handler.NewAttendanceHandler(attendanceService, log),
		Grade:      handler.NewGradeHandler(gradeService, log),
		Course:     handler.NewCourseHandler(courseService, log),
		Student:    handler.NewStudentHandler(studentService, log),
		Semester:   handler.NewSemesterHandler(semesterService, log),
		Offering:   handler.NewOfferingHandler(offeringService, log),
		Lecture:    handler.NewLectureHandler(lectureService, log),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService, log),
		Lookup:     handler.NewLookupHandler(lookupService, log),
		WS:         handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	// The in-process notification worker covers single-node deployments;
	// cmd/notifier runs the same loop standalone for split setups.
	workerCtx, workerCancel := context.WithCancel(context.Background())

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	notifyWorker := worker.NewNotifyWorker(notifRepo, smtpMailer, cfg.NotifyPollInterval, cfg.NotifyMaxAttempts, log)
	go notifyWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

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
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
