package FaqHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) SelectAllCategories(c *gin.Context) {
	categories, err := h.FaqRepository.SelectAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Kategoriler getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var request types.CategoryCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	category, err := h.FaqRepository.CreateCategory(request)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Soru kategorisi oluşturma") {
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
		"success":  true,
		"category": category,
	})
}
