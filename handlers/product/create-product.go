package ProductHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) CreateProduct(c *gin.Context) {
	var request types.ProductCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	product, err := h.ProductRepository.CreateProduct(request)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Ürün oluşturma") {
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
		"product": product,
	})
}
