package main

import (
	"context"
	"fmt"

	"taskboard-api/config"
	_ "taskboard-api/docs" // Swagger docs
	"taskboard-api/internal/httpserver"
	"taskboard-api/internal/notification"
	notifRepo "taskboard-api/internal/notification/repository/postgre"
	"taskboard-api/pkg/gcalendar"
	"taskboard-api/pkg/log"
	"taskboard-api/pkg/postgre"
)

// @title       Taskboard API
// @description Task management with dependency ordering, cascade deletes, and deadline guarding.
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

	ctx := context.Background()

	logger.Info(ctx, "Starting Taskboard API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(postgre.Config{
		Host:         cfg.Postgres.Host,
		Port:         cfg.Postgres.Port,
		User:         cfg.Postgres.User,
		Password:     cfg.Postgres.Password,
		Database:     cfg.Postgres.Database,
		SSLMode:      cfg.Postgres.SSLMode,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	// 4. Notification sink: poll transport always on, push when configured
	notifiers := []notification.Notifier{
		notification.NewStoreNotifier(notifRepo.New(db, logger)),
	}
	if cfg.Notifier.PushEndpoint != "" {
		notifiers = append(notifiers, notification.NewWebhookNotifier(cfg.Notifier.PushEndpoint))
		logger.Infof(ctx, "Webhook push notifier enabled: %s", cfg.Notifier.PushEndpoint)
	}
	sink := notification.NewSink(logger, notifiers...)

	// 5. Google Calendar mirror (optional)
	var calendar gcalendar.EventMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Sink:        sink,
		Calendar:    calendar,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Auth:        cfg.Auth,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
