package response

import (
	"log"
	"net/http"

	"github.com/devfolio/devfolio/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Error renders a standardized JSON error response.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
