package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	assert.True(t, HasPermission(types.RoleAdmin, configs.PermissionDeleteContent))
	assert.True(t, HasPermission(types.RoleAdmin, configs.PermissionManageCache))
	assert.True(t, HasPermission(types.RoleEditor, configs.PermissionCreateContent))

	assert.False(t, HasPermission(types.RoleEditor, configs.PermissionDeleteContent))
	assert.False(t, HasPermission(types.RoleEditor, configs.PermissionManageContacts))
	assert.False(t, HasPermission(types.RoleUser, configs.PermissionCreateContent))
	assert.False(t, HasPermission(types.Role("UNKNOWN"), configs.PermissionCreateContent))
}

func runPermissionRequest(role any, permission configs.Permission) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			if role != nil {
				c.Set("role", role)
			}
		},
		PermissionMiddleware(permission),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPermissionMiddleware(t *testing.T) {
	t.Parallel()

	w := runPermissionRequest(types.RoleAdmin, configs.PermissionDeleteContent)
	assert.Equal(t, http.StatusOK, w.Code)

	w = runPermissionRequest(types.RoleEditor, configs.PermissionDeleteContent)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Role missing from context means the auth middleware never ran
	w = runPermissionRequest(nil, configs.PermissionCreateContent)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
