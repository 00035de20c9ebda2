package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateRequest binds the JSON body into request and writes the error
// response itself. Handlers just return when it fails.
func ValidateRequest(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_request",
			"message": "Geçersiz istek formatı: " + err.Error(),
		})
		return err
	}

	return nil
}
