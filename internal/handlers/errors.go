package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/store"
)

// respondStoreError maps the store error taxonomy onto HTTP statuses.
// Validation failures stop at this boundary; everything unexpected
// collapses to a generic 500.
func respondStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"field":   verr.Field,
			"message": verr.Message,
		})
	case errors.Is(err, store.ErrBulkNoMatch):
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching ids"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process request"})
	}
}

func respondValidation(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"field":   field,
		"message": message,
	})
}
