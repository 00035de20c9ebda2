package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// HandleDatabaseError maps well-known postgres error codes to JSON responses.
// Returns true when the response has been written.
func HandleDatabaseError(c *gin.Context, err error, operation string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code {
	case "23505": // unique_violation
		constraintName := pqErr.Constraint
		if strings.Contains(constraintName, "slug") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "slug_exists",
				"message": "Bu slug zaten kullanılıyor.",
			})
		} else if strings.Contains(constraintName, "sku") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "sku_exists",
				"message": "Bu SKU zaten kullanılıyor.",
			})
		} else if strings.Contains(constraintName, "email") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "email_exists",
				"message": "Bu e-posta adresi zaten kullanılıyor.",
			})
		} else {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "duplicate_entry",
				"message": "Bu kayıt zaten mevcut.",
			})
		}
		return true
	case "23503": // foreign_key_violation
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "related_record_not_found",
			"message": "İlişkili kayıt bulunamadı.",
		})
		return true
	}

	return false
}
