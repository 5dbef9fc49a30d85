package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/model"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Validation, duplicate-name, in-use and partial-reorder failures are all
// client errors; anything unrecognized is logged and reported as a 500
// without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case model.IsValidation(err), model.IsDuplicateName(err), model.IsInUse(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case model.IsPartialReorder(err):
		var pe *model.PartialReorderError
		errors.As(err, &pe)
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   err.Error(),
			"requested": pe.Requested,
			"modified":  pe.Modified,
		})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, model.ErrInvalidPIN):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid PIN"})
	default:
		log.Printf("[error] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
