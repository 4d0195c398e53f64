package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	store          database.Store
	meetingHandler *Meeting
	actionHandler  *Action
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, store database.Store, meetingHandler *Meeting, actionHandler *Action) *Router {
	return &Router{
		cfg:            cfg,
		store:          store,
		meetingHandler: meetingHandler,
		actionHandler:  actionHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	rt.setupMeetingRoutes(e)
	rt.setupActionRoutes(e)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(e *echo.Echo) {
	meetings := e.Group("/meetings")
	meetings.GET("", rt.meetingHandler.List)
	meetings.POST("/create", rt.meetingHandler.Create)
	meetings.POST("/process", rt.meetingHandler.Process)
	meetings.GET("/:id", rt.meetingHandler.Get)
}

// setupActionRoutes configures action item routes
func (rt *Router) setupActionRoutes(e *echo.Echo) {
	actions := e.Group("/actions")
	actions.GET("", rt.actionHandler.List)
	actions.PATCH("/:id", rt.actionHandler.Update)
	actions.DELETE("/:id", rt.actionHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"storage": rt.store.Backend(),
	})
}
