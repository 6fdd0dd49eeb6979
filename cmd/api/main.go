package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"workspace-gateway/config"
	_ "workspace-gateway/docs" // Swagger docs
	"workspace-gateway/internal/calendar"
	calendarHTTP "workspace-gateway/internal/calendar/delivery/http"
	calendarUC "workspace-gateway/internal/calendar/usecase"
	"workspace-gateway/internal/httpserver"
	notesHTTP "workspace-gateway/internal/notes/delivery/http"
	"workspace-gateway/internal/notes/repository/notion"
	notesUC "workspace-gateway/internal/notes/usecase"
	"workspace-gateway/pkg/gcalendar"
	"workspace-gateway/pkg/log"
)

// @title       Workspace Gateway API
// @description HTTP facade over Google Calendar and Notion workspace operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Workspace Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Notes domain
	notionClient := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.Token)
	notesUseCase := notesUC.New(logger, notionClient)
	notesHandler := notesHTTP.New(logger, notesUseCase)

	// 4. Calendar domain (optional)
	var calendarClient calendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendarClient = gc
		}
	}

	calendarUseCase := calendarUC.New(logger, calendarClient)
	calendarHandler := calendarHTTP.New(logger, calendarUseCase)

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CalendarHandler: calendarHandler,
		NotesHandler:    notesHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
