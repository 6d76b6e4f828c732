package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONMessage answers {"message": msg}, the shape every mutation endpoint
// and every error uses.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONCreated answers a create with the new row id.
func JSONCreated(c *gin.Context, id uint, message string) {
	c.JSON(http.StatusOK, gin.H{"id": id, "message": message})
}

// JSONDatabaseError is the catch-all 500. Details stay in the server log.
func JSONDatabaseError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
}

// JSONValidationError answers a 400 for a body that failed binding.
func JSONValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
}
