// Package server exposes the tracker's REST API. Routes mirror the shape
// the web client expects: auth under /api/auth, headings and work-hours
// behind the bearer-token middleware.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/service"
)

// Server aggregates the HTTP surface over the services.
type Server struct {
	auth      *service.AuthService
	headings  *service.HeadingService
	workHours *service.WorkHourService
	engine    *gin.Engine
}

// New builds the router. The caller serves the returned handler.
func New(auth *service.AuthService, headings *service.HeadingService, workHours *service.WorkHourService) *Server {
	s := &Server{
		auth:      auth,
		headings:  headings,
		workHours: workHours,
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

// Handler returns the http.Handler for the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", s.handleLogin)
	authGroup.GET("/validate", s.handleValidateToken)
	authGroup.POST("/change-pin", s.requireAuth(), s.handleChangePIN)

	headings := api.Group("/headings", s.requireAuth())
	headings.GET("", s.handleListHeadings)
	headings.POST("", s.handleCreateHeading)
	headings.PUT("/reorder", s.handleReorderHeadings)
	headings.PUT("/:id", s.handleRenameHeading)
	headings.PUT("/:id/move", s.handleMoveHeading)
	headings.DELETE("/:id", s.handleDeleteHeading)

	workHours := api.Group("/work-hours", s.requireAuth())
	workHours.GET("", s.handleListWorkHours)
	workHours.POST("", s.handleCreateWorkHour)
	workHours.GET("/summary", s.handleSummary)
	workHours.PUT("/status/batch", s.handleBatchStatus)
	workHours.PUT("/:id", s.handleUpdateWorkHour)
	workHours.PUT("/:id/status", s.handleSetStatus)
	workHours.DELETE("/:id", s.handleDeleteWorkHour)
}
