package AdminHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CleanupSessions sweeps expired session rows. Expired sessions are already
// invisible to lookups, this just reclaims the storage.
func (h *Handler) CleanupSessions(c *gin.Context) {
	deleted, err := h.SessionRepository.DeleteExpiredSessions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Oturum temizliği başarısız oldu.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Süresi dolmuş oturumlar temizlendi.",
		"deleted": deleted,
	})
}
