package AdminHandler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
)

const dashboardStatsCacheKey = "admin:dashboard-stats"

// DashboardStats returns content and contact counters for the admin panel.
// Counts are cached for a short window to keep the panel snappy.
func (h *Handler) DashboardStats(c *gin.Context) {
	if cached, exists := h.Cache.Get(dashboardStatsCacheKey); exists {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats":   json.RawMessage(cached),
			"cached":  true,
		})
		return
	}

	stats, err := h.AdminRepository.SelectDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "İstatistikler getirilemedi.",
		})
		return
	}

	if data, err := json.Marshal(stats); err == nil {
		h.Cache.SetWithTTL(dashboardStatsCacheKey, data, configs.DASHBOARD_CACHE_TTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
		"cached":  false,
	})
}
