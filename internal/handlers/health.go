package handlers

import (
	"net/http"

	"commentboard/internal/db"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := db.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "PostgreSQL"})
}
