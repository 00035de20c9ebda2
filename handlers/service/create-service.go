package ServiceHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) CreateService(c *gin.Context) {
	var request types.ServiceCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	service, err := h.ServiceRepository.CreateService(request)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "Hizmet oluşturma") {
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
		"service": service,
	})
}
