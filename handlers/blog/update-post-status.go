package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdatePostStatus moves a post between DRAFT, PUBLISHED and ARCHIVED. The
// first transition to PUBLISHED stamps published_at.
func (h *Handler) UpdatePostStatus(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz blog ID formatı.",
		})
		return
	}

	var request types.BlogStatusUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	err = h.BlogRepository.UpdatePostStatus(postID, request.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "post_not_found",
			"message": "Blog yazısı bulunamadı.",
		})
		return
	}

	h.Cache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog yazısı durumu başarıyla güncellendi.",
	})
}
