package ContactHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nyaruka/phonenumbers"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SubmitContact is the public contact form endpoint. Phone is optional but
// must parse as a valid number when present, default region TR.
func (h *Handler) SubmitContact(c *gin.Context) {
	var request types.ContactCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.Phone != nil && strings.TrimSpace(*request.Phone) != "" {
		normalized, err := normalizePhone(*request.Phone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_phone",
				"message": "Geçersiz telefon numarası.",
			})
			return
		}
		request.Phone = &normalized
	}

	contact, err := h.ContactRepository.CreateContact(request, utils.GetTrueClientIP(c), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "unexpected_error",
			"message": "Mesajınız gönderilemedi. Lütfen daha sonra tekrar deneyin.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Mesajınız alındı. En kısa sürede size dönüş yapacağız.",
		"id":      contact.ID,
	})
}

func normalizePhone(raw string) (string, error) {
	number, err := phonenumbers.Parse(raw, "TR")
	if err != nil {
		return "", err
	}

	if !phonenumbers.IsValidNumber(number) {
		return "", phonenumbers.ErrNotANumber
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
