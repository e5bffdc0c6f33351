package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlopes/wordflash/internal/api"
	"github.com/mlopes/wordflash/internal/config"
	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/reminder"
	"github.com/mlopes/wordflash/internal/services"
	"github.com/mlopes/wordflash/internal/store/sqlite"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("WordFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("due_limit=%d", cfg.DueLimit)
	log.Debug("review_reminders=%t", cfg.ReviewReminders)
	log.Debug("daily_goal=%d", cfg.DailyGoal)
	log.Debug("reminder_interval_minutes=%d", cfg.ReminderIntervalMins)

	st, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open store: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing store")
		st.Close()
	}()

	scheduler := services.NewSchedulerService(st, cfg.StatsMissingAsNew)

	reminders := reminder.New(scheduler, nil, cfg)
	if err := reminders.Start(); err != nil {
		log.Error("failed to start reminder scheduler: %v", err)
		os.Exit(1)
	}

	srv := &api.Server{
		Scheduler: scheduler,
		DueLimit:  cfg.DueLimit,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping reminder scheduler")
	reminders.Stop()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("WordFlash Server Stopped")
	log.Info("===========================================")
}
