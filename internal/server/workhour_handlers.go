package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/model"
	"workhours/internal/service"
)

func filterFromQuery(c *gin.Context) model.EntryFilter {
	return model.EntryFilter{
		From:      c.Query("from"),
		To:        c.Query("to"),
		HeadingID: c.Query("heading"),
		Status:    model.EntryStatus(c.DefaultQuery("status", string(model.StatusAll))),
	}
}

func (s *Server) handleCreateWorkHour(c *gin.Context) {
	var input service.WorkHourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	entry, err := s.workHours.Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleListWorkHours(c *gin.Context) {
	entries, err := s.workHours.List(c.Request.Context(), currentUserID(c), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []model.WorkHour{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleUpdateWorkHour(c *gin.Context) {
	var input service.WorkHourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	entry, err := s.workHours.Update(c.Request.Context(), currentUserID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDeleteWorkHour(c *gin.Context) {
	if err := s.workHours.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work hour deleted successfully"})
}

type statusRequest struct {
	IsComplete bool `json:"isComplete"`
}

// handleSetStatus toggles a single entry's completion flag without
// requiring the client to resend the whole entry.
func (s *Server) handleSetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	entry, err := s.workHours.SetCompletion(c.Request.Context(), currentUserID(c), c.Param("id"), req.IsComplete)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

type batchStatusRequest struct {
	From       string `json:"startDate"`
	To         string `json:"endDate"`
	HeadingID  string `json:"heading"`
	IsComplete bool   `json:"isComplete"`
}

func (s *Server) handleBatchStatus(c *gin.Context) {
	var req batchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	filter := model.EntryFilter{From: req.From, To: req.To, HeadingID: req.HeadingID}
	modified, err := s.workHours.SetCompletionBatch(c.Request.Context(), currentUserID(c), filter, req.IsComplete)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Work hours updated successfully",
		"modifiedCount": modified,
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	totals, err := s.workHours.Summarize(c.Request.Context(), currentUserID(c), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
