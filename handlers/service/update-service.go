package ServiceHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz hizmet ID formatı.",
		})
		return
	}

	var request types.ServiceUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	service, err := h.ServiceRepository.UpdateService(serviceID, request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "service_not_found",
				"message": "Hizmet bulunamadı.",
			})
			return
		}

		if utils.HandleDatabaseError(c, err, "Hizmet güncelleme") {
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
		"service": service,
	})
}

func (h *Handler) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz hizmet ID formatı.",
		})
		return
	}

	err = h.ServiceRepository.DeleteServiceByID(serviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "service_not_found",
			"message": "Hizmet bulunamadı.",
		})
		return
	}

	h.Cache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hizmet başarıyla silindi.",
	})
}
