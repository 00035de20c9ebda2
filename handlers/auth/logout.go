package AuthHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// Logout deletes the caller's session row when one can still be located and
// clears both cookies either way. It is idempotent and always succeeds from
// the client's point of view, even with a stale or missing session.
func (h *Handler) Logout(c *gin.Context) {
	accessToken, err := c.Cookie(configs.ACCESS_TOKEN_NAME)
	if err == nil && accessToken != "" {
		if session, err := h.Sessions.SelectSessionByAccessToken(accessToken); err == nil {
			// A failed delete is left to the expired-session sweep
			_ = h.Sessions.DeleteSessionByID(session.ID)
		}
	}

	utils.ClearSessionCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Başarıyla çıkış yapıldı.",
	})
}

// LogoutAll revokes every session of the authenticated user, this device
// included. Runs behind the auth middleware.
func (h *Handler) LogoutAll(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	if err := h.Sessions.DeleteSessionsByUserID(userID); err != nil {
		handleServerError(c)
		return
	}

	utils.ClearSessionCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tüm oturumlar sonlandırıldı.",
	})
}
