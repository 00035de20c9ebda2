package ImageHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) SelectImages(c *gin.Context) {
	var options types.ImageQueryOptions

	if userStr := c.Query("user"); userStr != "" {
		userID, err := uuid.Parse(userStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_query",
				"message": "Geçersiz kullanıcı ID formatı.",
			})
			return
		}
		options.UserID = userID
	}

	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	images, total, err := h.ImageRepository.SelectImages(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Görseller getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"images":  images,
		"meta":    types.NewMeta(page, limit, total),
	})
}
