package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
)

// SetSessionCookies writes both token cookies with max-ages matching each
// token's lifetime. Secure is only set in release mode so local development
// over plain HTTP keeps working.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := gin.Mode() == gin.ReleaseMode

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		configs.ACCESS_TOKEN_NAME,
		accessToken,
		int(configs.ACCESS_TOKEN_DURATION.Seconds()),
		"/",
		"",
		secure,
		true,
	)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		configs.REFRESH_TOKEN_NAME,
		refreshToken,
		int(configs.REFRESH_TOKEN_DURATION.Seconds()),
		"/",
		"",
		secure,
		true,
	)
}

// ClearSessionCookies expires both token cookies immediately.
func ClearSessionCookies(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(configs.ACCESS_TOKEN_NAME, "", -1, "/", "", secure, true)
	c.SetCookie(configs.REFRESH_TOKEN_NAME, "", -1, "/", "", secure, true)
}
