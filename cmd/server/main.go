package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"churchapi/internal/config"
	"churchapi/internal/database"
	"churchapi/internal/handlers"
	"churchapi/internal/repository"
	"churchapi/internal/security"
	"churchapi/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	if cfg.UsingDefaultSecret() {
		slog.Warn("JWT_SECRET is not set; tokens are signed with the built-in default secret")
	}

	ctx := context.Background()

	// Initialize database with config (supports sqlite, postgres, pgx, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	slog.Info("database connection established", "type", cfg.DatabaseType)

	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hasher, err := security.NewPasswordHasher(cfg.PasswordHashScheme)
	if err != nil {
		log.Fatalf("Invalid password hash scheme: %v", err)
	}
	tokens := security.NewTokenService(cfg.JWTSecret)

	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		slog.Warn("email service unavailable", "error", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	childRepo := repository.NewChildRepository(db)
	eventRepo := repository.NewEventRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)

	// Initialize services
	var mailer service.WelcomeMailer
	if emailService != nil && emailService.IsEnabled() {
		mailer = emailService
	}
	services := handlers.Services{
		Auth:          service.NewAuthService(userRepo, hasher, tokens, mailer),
		Users:         service.NewUserService(userRepo),
		Children:      service.NewChildService(childRepo),
		Events:        service.NewEventService(eventRepo),
		Checkins:      service.NewCheckinService(checkinRepo, childRepo, eventRepo),
		Announcements: service.NewAnnouncementService(repository.NewAnnouncementRepository(db)),
		Prayers:       service.NewPrayerService(repository.NewPrayerRepository(db)),
		Donations:     service.NewDonationService(repository.NewDonationRepository(db)),
	}

	opts := handlers.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HidePasswordHash:   cfg.HidePasswordHash,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
	}
	if cfg.AuthRateLimit > 0 {
		opts.AuthRateLimiter = security.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
		defer opts.AuthRateLimiter.Stop()
	}

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(services, opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
