// Command api runs the job portal HTTP server.
//
// @title Job Portal API
// @version 1.0
// @description Job board backend for recruiters and job seekers.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/config"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/logging"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/scheduler"
	"jobportal-backend/internal/server"
	"jobportal-backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	auth.SetSecretKey(cfg.SecretKey)

	db, err := database.NewDBInstance(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database failed to initialize", "err", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()

	if err := db.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("failed to create admin account", "err", err)
	}

	files, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize file storage", "type", cfg.Storage.Type, "err", err)
	}

	var (
		blacklist auth.JwtBlacklistStore
		expiring  scheduler.ExpiringBlacklist
	)
	if cfg.RedisURL != "" {
		client, err := auth.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", "err", err)
		}
		defer func() { _ = client.Close() }()
		blacklist = auth.NewRedisBlacklistStore(client)
		logger.Info("using redis token blacklist")
	} else {
		mem := auth.NewInMemoryBlacklistStore()
		blacklist, expiring = mem, mem
		logger.Info("using in-memory token blacklist")
	}

	jobRepo := repository.NewJobPostRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	service := jobpost.NewService(jobRepo, activityRepo, files, logger)

	sched := scheduler.New(logger, expiring, jobRepo, files)
	if err := sched.Start(ctx); err != nil {
		logger.Fatal("failed to start scheduler", "err", err)
	}
	defer sched.Stop()

	srv := server.NewServer(cfg, db, service, blacklist, files, logger).HTTPServer()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "err", err)
		}
	}()

	logger.Info("server starting", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "err", err)
		return
	}
	<-shutdownDone
	logger.Info("server stopped")
}
