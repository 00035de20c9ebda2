package ImageHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// PresignUpload hands the client a short lived PUT URL so the file goes
// straight to the bucket without passing through this server.
func (h *Handler) PresignUpload(c *gin.Context) {
	var request types.PresignURLInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.SizeInBytes > configs.UPLOAD_MAX_SIZE_BYTES {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "file_too_large",
			"message": "Dosya boyutu izin verilen sınırın üzerinde.",
		})
		return
	}

	if !strings.HasPrefix(request.ContentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_content_type",
			"message": "Sadece görsel dosyaları yüklenebilir.",
		})
		return
	}

	output, err := h.StorageRepository.GeneratePresignedURL(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "presign_failed",
			"message": "Yükleme adresi oluşturulamadı.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"upload":  output,
	})
}
