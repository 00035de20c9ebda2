package ProductHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz ürün ID formatı.",
		})
		return
	}

	err = h.ProductRepository.DeleteProductByID(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "product_not_found",
			"message": "Ürün bulunamadı.",
		})
		return
	}

	h.Cache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ürün başarıyla silindi.",
	})
}
