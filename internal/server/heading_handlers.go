package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/model"
	"workhours/internal/service"
)

type headingRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateHeading(c *gin.Context) {
	var req headingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	heading, err := s.headings.Create(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, heading)
}

func (s *Server) handleListHeadings(c *gin.Context) {
	headings, err := s.headings.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if headings == nil {
		headings = []model.Heading{}
	}
	c.JSON(http.StatusOK, headings)
}

func (s *Server) handleRenameHeading(c *gin.Context) {
	var req headingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	heading, err := s.headings.Rename(c.Request.Context(), currentUserID(c), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, heading)
}

func (s *Server) handleDeleteHeading(c *gin.Context) {
	if err := s.headings.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Heading deleted successfully"})
}

type reorderRequest struct {
	Orders []model.OrderAssignment `json:"orders"`
}

func (s *Server) handleReorderHeadings(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := s.headings.Reorder(c.Request.Context(), currentUserID(c), req.Orders); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Headings reordered successfully"})
}

type moveRequest struct {
	Direction string `json:"direction"`
}

func (s *Server) handleMoveHeading(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	err := s.headings.Move(c.Request.Context(), currentUserID(c), c.Param("id"), service.MoveDirection(req.Direction))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Heading moved successfully"})
}
