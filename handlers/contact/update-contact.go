package ContactHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateContact handles admin triage: status, read flag and internal notes.
func (h *Handler) UpdateContact(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Geçersiz mesaj ID formatı.",
		})
		return
	}

	var request types.ContactStatusUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	contact, err := h.ContactRepository.UpdateContact(contactID, request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "contact_not_found",
				"message": "Mesaj bulunamadı.",
			})
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
		"contact": contact,
	})
}
