package FaqHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) CreateFaq(c *gin.Context) {
	var request types.FaqCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	faq, err := h.FaqRepository.CreateFaq(request)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Soru oluşturma") {
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Beklenmeyen bir hata oluştu.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"faq":     faq,
	})
}
