package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-notes-tracker/pkg/validator"

	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
	actionuse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/action"
	aiuse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/ai"
	meetinguse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-notes-tracker/pkg/ai"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
)

// @title           Meeting Notes Tracker API
// @version         1.0
// @description     API for tracking meeting transcripts, AI summaries and extracted action items

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize storage: MongoDB when reachable, in-memory fallback
	// otherwise. Never fatal.
	log.Println("📦 Connecting to storage...")
	store := database.NewStore(cfg, logger)
	defer store.Close(context.Background())
	log.Printf("✅ Storage backend: %s", store.Backend())

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(store)
	actionRepo := repository.NewActionItemRepository(store)

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	aiService := aiuse.NewService(geminiClient, logger)
	if cfg.GeminiKeyConfigured() {
		log.Println("🔑 Gemini API Key: Configured ✅")
	} else {
		log.Println("🔑 Gemini API Key: NOT SET ⚠️  (process requests will serve the demo payload)")
	}

	// Initialize services
	log.Println("📝 Initializing services...")
	meetingService := meetinguse.NewService(meetingRepo, actionRepo, aiService, logger)
	actionService := actionuse.NewService(actionRepo, logger)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	actionHandler := handler.NewActionHandler(actionService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, store, meetingHandler, actionHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
