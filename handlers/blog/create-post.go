package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) CreatePost(c *gin.Context) {
	var request types.BlogCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	post, err := h.BlogRepository.CreatePost(request, userID)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Blog yazısı oluşturma") {
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

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    post,
	})
}
