package AuthHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req types.UserCreateRequest
	if err := utils.ValidateRequest(c, &req); err != nil {
		return
	}

	user, err := h.Users.CreateNewUser(req)
	if err != nil {
		if utils.HandleDatabaseError(c, err, "CreateUser") {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "user_create_failed",
			"message": "Kullanıcı oluşturulamadı.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Kullanıcı başarıyla oluşturuldu.",
		"user":    user.Profile(),
	})
}
