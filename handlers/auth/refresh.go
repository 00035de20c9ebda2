package AuthHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// Refresh exchanges a valid refresh token for a brand-new token pair. The
// session row is rotated in place, so the previous pair stops matching and is
// unusable from this response on. A refresh token without a live row (logged
// out, expired or already rotated) always fails; there is no silent re-issue.
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(configs.REFRESH_TOKEN_NAME)
	if err != nil {
		handleAuthFailure(c, "Oturum bulunamadı.")
		return
	}

	// An access token presented here fails the kind check
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		handleAuthFailure(c, "Oturum geçersiz.")
		return
	}

	session, err := h.Sessions.SelectSessionByRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			handleAuthFailure(c, "Oturum geçersiz.")
			return
		}
		handleServerError(c)
		return
	}

	if session.UserID != userID {
		handleAuthFailure(c, "Oturum geçersiz.")
		return
	}

	newAccessToken, err := utils.GenerateAccessToken(session.UserID)
	if err != nil {
		handleServerError(c)
		return
	}

	newRefreshToken, err := utils.GenerateRefreshToken(session.UserID)
	if err != nil {
		handleServerError(c)
		return
	}

	if err := h.Sessions.UpdateSessionTokens(session.ID, newAccessToken, newRefreshToken); err != nil {
		handleServerError(c)
		return
	}

	utils.SetSessionCookies(c, newAccessToken, newRefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Oturum yenilendi.",
	})
}

func handleAuthFailure(c *gin.Context, message string) {
	utils.ClearSessionCookies(c)

	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": message,
	})
}
