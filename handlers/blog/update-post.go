package BlogHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz blog ID formatı.",
		})
		return
	}

	var request types.BlogUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	post, err := h.BlogRepository.UpdatePost(postID, request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "post_not_found",
				"message": "Blog yazısı bulunamadı.",
			})
			return
		}

		if utils.HandleDatabaseError(c, err, "Blog yazısı güncelleme") {
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Beklenmeyen bir hata oluştu.",
		})
		return
	}

	h.Cache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

func (h *Handler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz blog ID formatı.",
		})
		return
	}

	err = h.BlogRepository.DeletePostByID(postID)
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
		"message": "Blog yazısı başarıyla silindi.",
	})
}
