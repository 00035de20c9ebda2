package AdminHandler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClearAllCache tüm cache'i temizler
func (h *Handler) ClearAllCache(c *gin.Context) {
	h.Cache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cache başarıyla temizlendi.",
	})
}

// ClearCacheWithPrefix belirtilen öneke sahip cache anahtarlarını temizler
func (h *Handler) ClearCacheWithPrefix(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "missing_parameter",
			"message": "prefix parametresi gereklidir.",
		})
		return
	}

	h.Cache.ClearPrefix(prefix)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("'%s' önekine sahip cache anahtarları temizlendi.", prefix),
	})
}
