package handlers

import (
	"errors"
	"net/http"

	"commentboard/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// writeServiceError maps service errors onto the HTTP surface: validation
// failures are 400, missing targets 404, everything else is a store error and
// passes through as 500.
func writeServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	default:
		log.Errorf("[comments] store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
