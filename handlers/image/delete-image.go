package ImageHandler

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteImage removes the database row and the bucket object. The row is the
// source of truth, a failed bucket delete is logged but does not fail the
// request.
func (h *Handler) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz görsel ID formatı.",
		})
		return
	}

	image, err := h.ImageRepository.SelectImageByID(imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "image_not_found",
				"message": "Görsel bulunamadı.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Görsel getirilemedi.",
		})
		return
	}

	if err := h.ImageRepository.DeleteImageByID(imageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Görsel silinemedi.",
		})
		return
	}

	if err := h.StorageRepository.DeleteObject(c.Request.Context(), image.ObjectKey); err != nil {
		log.Printf("Image -> bucket delete failed for %s: %v", image.ObjectKey, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Görsel başarıyla silindi.",
	})
}
