package ProductHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz ürün ID formatı.",
		})
		return
	}

	var request types.ProductUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	product, err := h.ProductRepository.UpdateProduct(productID, request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "product_not_found",
				"message": "Ürün bulunamadı.",
			})
			return
		}

		if utils.HandleDatabaseError(c, err, "Ürün güncelleme") {
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
		"product": product,
	})
}
