package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview-marketplace-backend/config"
	_ "interview-marketplace-backend/docs" // Important for Swagger
	v1 "interview-marketplace-backend/internal/delivery/http/v1"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/internal/repository/postgres"
	redisrepo "interview-marketplace-backend/internal/repository/redis"
	"interview-marketplace-backend/internal/usecase"
	"interview-marketplace-backend/pkg/audit"
	"interview-marketplace-backend/pkg/auth"
	"interview-marketplace-backend/pkg/database"
	"interview-marketplace-backend/pkg/email"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/meeting"
	"interview-marketplace-backend/pkg/redis"
	"interview-marketplace-backend/pkg/ws"

	"github.com/google/uuid"
)

// @title           Interview Marketplace API
// @version         1.0
// @description     Scheduling, rescheduling, feedback and profile completion for candidates and interviewers.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting interview marketplace backend", "port", cfg.Port)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Log.Warn("Unknown APP_TIMEZONE, using UTC", "timezone", cfg.Timezone, "error", err)
		loc = time.UTC
	}

	auditLog := audit.New("interview-marketplace", audit.Environment())
	defer func() { _ = auditLog.Sync() }()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis. Locks and rate limits degrade to in-process without it.
	var locker domain.RecordLocker
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - interview locks disabled, rate limits in memory", "error", err)
	} else {
		locker = redisrepo.NewInterviewLocker(redis.Client())
	}
	defer func() { _ = redis.Close() }()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	interviewerRepo := postgres.NewInterviewerRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	availabilityRepo := postgres.NewAvailabilityRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	// 6. Setup Notifications
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()
	ws.SetAllowedOrigins(cfg.AllowedWSOrigins)

	renderer, err := email.NewRenderer()
	if err != nil {
		logger.Log.Error("Failed to parse email templates", "error", err)
		os.Exit(1)
	}
	var sender domain.NotificationSender
	emailService := email.NewEmailService(cfg)
	if emailService.IsConfigured() {
		sender = email.NewRetryingSender(emailService, cfg.NotifyMaxAttempts, cfg.NotifyRetryBase)
	} else {
		logger.Log.Warn("Email service not fully configured - notifications are realtime only")
	}
	notifier := usecase.NewNotifier(sender, renderer, hub)

	// 7. Setup UseCases
	interviewUC := usecase.NewInterviewUsecase(usecase.InterviewUsecaseDeps{
		Candidates:     candidateRepo,
		Interviewers:   interviewerRepo,
		Interviews:     interviewRepo,
		Locker:         locker,
		Notifier:       notifier,
		Audit:          auditLog,
		NewID:          uuid.NewString,
		MeetingLinks:   meeting.NewLinks(cfg.MeetingLinkPool, cfg.MeetingBaseURL),
		ConflictPolicy: cfg.SchedulingConflictPolicy,
		Location:       loc,
		LockTTL:        cfg.LockTTL,
		AppBaseURL:     cfg.AppBaseURL,
		ActionTokens:   auth.NewActionTokens(cfg.ActionTokenSecret, cfg.ActionTokenTTL),
		UsedTokens:     redisrepo.NewActionTokenStore(redis.Client()),
	})
	availabilityUC := usecase.NewAvailabilityUsecase(interviewerRepo, availabilityRepo, uuid.NewString, loc)
	feedbackUC := usecase.NewFeedbackUsecase(usecase.FeedbackUsecaseDeps{
		Candidates:   candidateRepo,
		Interviewers: interviewerRepo,
		Interviews:   interviewRepo,
		Feedback:     feedbackRepo,
		Notifier:     notifier,
		Audit:        auditLog,
		FrontendURL:  cfg.FrontendURL,
	})
	profileUC := usecase.NewProfileUsecase(candidateRepo, interviewerRepo, notifier, cfg.FrontendURL)

	var redisCheck usecase.HealthCheck
	if redis.IsAvailable() {
		redisCheck = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(
		map[string]usecase.HealthCheck{"database": dbPool.Ping},
		map[string]usecase.HealthCheck{"redis": redisCheck},
	)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InterviewUC:    interviewUC,
		AvailabilityUC: availabilityUC,
		FeedbackUC:     feedbackUC,
		ProfileUC:      profileUC,
		HealthUC:       healthUC,
		Hub:            hub,
		KeySet:         auth.NewKeySet(cfg.JWKSURL),
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
