package middlewares

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UserStore and SessionStore are the repository slices the middleware needs.
// The user and session repositories satisfy them.
type UserStore interface {
	SelectUserByID(id uuid.UUID) (types.User, error)
}

type SessionStore interface {
	SelectSessionByAccessToken(token string) (types.Session, error)
}

// AuthMiddleware re-validates the caller on every request: the access token
// cookie must verify cryptographically AND match a live session row. A token
// whose session was revoked or rotated away is rejected even though its own
// expiry has not passed. Expired access tokens are not renewed here; clients
// go through the refresh endpoint.
func AuthMiddleware(ur UserStore, sr SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the access token cookie
		accessToken, err := c.Cookie(configs.ACCESS_TOKEN_NAME)
		if err != nil {
			handleUnauthorized(c, "Oturum bulunamadı.")
			return
		}

		// 2. Verify signature, expiry and kind
		userID, err := utils.ValidateAccessToken(accessToken)
		if err != nil {
			handleUnauthorized(c, "Oturum geçersiz.")
			return
		}

		// 3. The session store is the source of truth, not the token
		session, err := sr.SelectSessionByAccessToken(accessToken)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				handleUnauthorized(c, "Oturum geçersiz.")
				return
			}
			handleStoreError(c)
			return
		}

		if session.UserID != userID {
			handleUnauthorized(c, "Oturum geçersiz.")
			return
		}

		// 4. A deleted or deactivated user invalidates all of their sessions
		user, err := ur.SelectUserByID(session.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				handleUnauthorized(c, "Oturum geçersiz.")
				return
			}
			handleStoreError(c)
			return
		}

		if !user.IsActive {
			handleUnauthorized(c, "Hesabınız aktif değil.")
			return
		}

		// 5. Attach identity to the request context
		c.Set("user_id", user.ID)
		c.Set("session_id", session.ID)
		c.Set("email", user.Email)
		c.Set("role", user.Role)

		c.Next()
	}
}

func handleUnauthorized(c *gin.Context, message string) {
	utils.ClearSessionCookies(c)

	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": message,
	})
	c.Abort()
}

// handleStoreError covers persistence failures only. Details never leak to
// the client.
func handleStoreError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "server_error",
		"message": "Beklenmeyen bir hata oluştu.",
	})
	c.Abort()
}
