package AuthHandler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (h *Handler) Login(c *gin.Context) {
	var request types.UserLoginRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	// Unknown email, deactivated account and wrong password all answer with
	// the same message, so the response never reveals which one happened.
	user, err := h.Users.SelectUserByEmail(request.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			handleInvalidCredentials(c)
			return
		}
		handleServerError(c)
		return
	}

	if !user.IsActive {
		handleInvalidCredentials(c)
		return
	}

	if !utils.CheckPassword(request.Password, user.HashedPassword) {
		handleInvalidCredentials(c)
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		handleServerError(c)
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		handleServerError(c)
		return
	}

	session, err := h.Sessions.CreateSession(types.SessionCreateInput{
		UserID:       user.ID,
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(configs.SESSION_DURATION),
		UserAgent:    c.Request.UserAgent(),
		IPAddress:    utils.GetTrueClientIP(c),
	})
	if err != nil {
		handleServerError(c)
		return
	}

	// Last-login bookkeeping must not block the login
	now := time.Now()
	_ = h.Users.UpdateLastLogin(user.ID, now)

	utils.SetSessionCookies(c, accessToken, refreshToken)

	user.LastLogin = &now

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Giriş başarılı.",
		"user":    user.Profile(),
		"session": gin.H{
			"id":        session.ID,
			"expiresAt": session.ExpiresAt,
		},
	})
}

func handleInvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "invalid_credentials",
		"message": "Geçersiz e-posta veya şifre",
	})
}

func handleServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "server_error",
		"message": "Beklenmeyen bir hata oluştu.",
	})
}
