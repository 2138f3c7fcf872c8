package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timeblock/config"
	_ "timeblock/docs" // Swagger docs
	captureHTTP "timeblock/internal/capture/delivery/http"
	captureUC "timeblock/internal/capture/usecase"
	"timeblock/internal/httpserver"
	"timeblock/internal/middleware"
	"timeblock/internal/model"
	"timeblock/internal/notify"
	scheduleHTTP "timeblock/internal/schedule/delivery/http"
	pbRepo "timeblock/internal/schedule/repository/pocketbase"
	scheduleUC "timeblock/internal/schedule/usecase"
	"timeblock/pkg/datemath"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/log"
	"timeblock/pkg/pocketbase"
)

// @title       Timeblock API
// @description Recurrence expansion, day timelines and quick capture for personal scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timeblock...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Shared infrastructure
	dateMathParser, dtErr := datemath.NewParser(cfg.Schedule.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Schedule.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	logger.Infof(ctx, "Schedule timezone: %s", dateMathParser.Location())

	backendClient := pocketbase.NewClient(cfg.Backend.URL, cfg.Backend.AccessToken)
	repo := pbRepo.New(backendClient, logger)

	// Google Calendar mirror (optional)
	var mirror scheduleUC.Mirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			mirror = calendarClient
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 4. Domains
	schedUC := scheduleUC.New(logger, repo, repo, mirror, dateMathParser, cfg.Schedule.Timezone, scheduleUC.Defaults{
		MaxInstances:       cfg.Schedule.MaxInstances,
		TaskHorizonDays:    cfg.Schedule.TaskHorizonDays,
		EventHorizonMonths: cfg.Schedule.EventHorizonMonths,
	})
	schedHandler := scheduleHTTP.New(logger, schedUC)

	capUC := captureUC.New(logger, repo, repo, dateMathParser)
	capHandler := captureHTTP.New(logger, capUC)

	// 5. Reminder scheduler (optional)
	if cfg.Notify.Enabled {
		reminder := notify.NewScheduler(
			logger,
			model.Scope{UserID: cfg.Notify.UserID},
			repo,
			schedUC,
			notify.NewLogNotifier(logger),
			cfg.Notify.Lead,
		)
		if err := reminder.Start(); err != nil {
			logger.Errorf(ctx, "Failed to start reminder scheduler: %v", err)
			return
		}
		defer reminder.Stop()
		logger.Infof(ctx, "Reminder scheduler started (lead %s)", cfg.Notify.Lead)
	}

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ScheduleHandler: schedHandler,
		CaptureHandler:  capHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
