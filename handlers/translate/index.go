package TranslateHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/services/translate"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

type Handler struct {
	Translate *translate.Service
}

func NewHandler(s *translate.Service) *Handler {
	return &Handler{
		Translate: s,
	}
}

// TranslateContent çevirir admin paneldeki içerikleri TR ve EN arasında.
func (h *Handler) TranslateContent(c *gin.Context) {
	var request types.TranslateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.SourceLanguage == request.TargetLanguage {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "same_language",
			"message": "Kaynak ve hedef dil aynı olamaz.",
		})
		return
	}

	response, err := h.Translate.Translate(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "translation_failed",
			"message": "Çeviri servisi şu anda kullanılamıyor.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"translation": response,
	})
}
