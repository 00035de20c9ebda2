package ContactHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectContacts lists form submissions for the admin panel.
func (h *Handler) SelectContacts(c *gin.Context) {
	var options types.ContactQueryOptions

	options.Search = c.Query("search")

	if statusStr := c.Query("status"); statusStr != "" {
		options.Status = types.ContactStatus(statusStr)
	}

	if isReadStr := c.Query("is_read"); isReadStr != "" {
		isRead := isReadStr == "true"
		options.IsRead = &isRead
	}

	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	contacts, total, err := h.ContactRepository.SelectContacts(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Mesajlar getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
		"meta":     types.NewMeta(page, limit, total),
	})
}
