package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tailortalk/config"
	_ "tailortalk/docs" // Swagger docs
	appointmentHTTP "tailortalk/internal/appointment/delivery/http"
	"tailortalk/internal/appointment/usecase"
	"tailortalk/internal/calendar"
	"tailortalk/internal/httpserver"
	"tailortalk/pkg/keyword"
	"tailortalk/pkg/log"
)

// @title       TailorTalk API
// @description Conversational appointment booking backed by Google Calendar.
// @version     1
// @host        localhost:8000
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

	logger.Info(ctx, "Starting TailorTalk...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Intent parser
	parser, err := keyword.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		parser, _ = keyword.NewParser("UTC")
	}

	// 4. Calendar gateway (live when credentials exist, mock otherwise)
	gateway, err := calendar.New(ctx, logger, cfg.GoogleCalendar)
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar gateway: ", err)
		return
	}

	// 5. Appointment domain
	uc := usecase.New(logger, gateway, parser)
	handler := appointmentHTTP.New(logger, uc)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RateLimitPerMin:    cfg.HTTPServer.RateLimitPerMin,
		AppointmentHandler: handler,
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
