package FaqHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) UpdateFaq(c *gin.Context) {
	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz soru ID formatı.",
		})
		return
	}

	var request types.FaqUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	faq, err := h.FaqRepository.UpdateFaq(faqID, request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "faq_not_found",
				"message": "Soru bulunamadı.",
			})
			return
		}

		if utils.HandleDatabaseError(c, err, "Soru güncelleme") {
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Beklenmeyen bir hata oluştu.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"faq":     faq,
	})
}

func (h *Handler) DeleteFaq(c *gin.Context) {
	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz soru ID formatı.",
		})
		return
	}

	err = h.FaqRepository.DeleteFaqByID(faqID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "faq_not_found",
			"message": "Soru bulunamadı.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Soru başarıyla silindi.",
	})
}
