package ImageHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// ConfirmUpload persists the metadata of a completed direct upload.
func (h *Handler) ConfirmUpload(c *gin.Context) {
	var request types.ConfirmUploadInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	image, err := h.ImageRepository.SaveImage(userID, request)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Görsel kaydetme") {
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Görsel kaydedilemedi.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"image":   image,
	})
}
