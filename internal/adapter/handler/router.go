package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	annotationHandler *Annotation
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, annotationHandler *Annotation) *Router {
	return &Router{
		cfg:               cfg,
		annotationHandler: annotationHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnnotationRoutes(v1)
}

// setupAnnotationRoutes configures annotation routes
func (rt *Router) setupAnnotationRoutes(g *echo.Group) {
	if rt.annotationHandler != nil {
		g.POST("/annotate", rt.annotationHandler.Annotate)
		g.POST("/transcribe-annotate", rt.annotationHandler.TranscribeAnnotate)
	} else {
		// Placeholder routes when handler is not initialized
		g.POST("/annotate", rt.notImplemented)
		g.POST("/transcribe-annotate", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Transcription = rt.cfg.TranscriptionEnabled()
		resp.CacheDriver = rt.cfg.Cache.Driver
	}
	return c.JSON(http.StatusOK, resp)
}
