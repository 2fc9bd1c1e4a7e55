package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-notes/docs"
	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/sentiment"
	annotationUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/annotation"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-notes/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// @title           Meeting Notes API
// @version         1.0
// @description     Extractive annotation of meeting transcripts: summary, key points, keywords, action items, decisions and topics

// @contact.name   API Support
// @contact.email  support@infoquang.id.vn

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false
	e.HTTPErrorHandler = httpmw.ErrorHandler(logger, cfg.Server.BodyLimit)

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	logger.Info("🔧 Initializing dependencies...")

	// Result cache
	store, err := cache.NewStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.String("driver", cfg.Cache.Driver), zap.Error(err))
	}
	var resultCache annotationUsecase.ResultCache
	if store != nil {
		defer store.Close()
		resultCache = cache.NewAnnotationCache(store, cfg.Cache.TTL)
		logger.Info("📦 Result cache ready", zap.String("driver", cfg.Cache.Driver), zap.Duration("ttl", cfg.Cache.TTL))
	} else {
		logger.Info("📦 Result cache disabled")
	}

	// Speech-to-text is optional
	var transcriber annotationUsecase.Transcriber
	if cfg.TranscriptionEnabled() {
		transcriber = pkgai.NewAssemblyAIClient(cfg.Assembly, logger)
		logger.Info("🤖 AssemblyAI transcription enabled", zap.String("speech_model", cfg.Assembly.SpeechModel))
	} else {
		logger.Warn("⚠️  ASSEMBLYAI_API_KEY not set, /v1/transcribe-annotate will answer 503")
	}

	annotationService := annotationUsecase.NewService(cfg, transcriber, resultCache, sentiment.NewVaderAnalyzer(), logger)
	annotationHandler := handler.NewAnnotationHandler(annotationService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, annotationHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}
