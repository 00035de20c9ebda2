package middlewares

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

type fakeUserStore struct {
	users map[uuid.UUID]types.User
}

func (f *fakeUserStore) SelectUserByID(id uuid.UUID) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, sql.ErrNoRows
	}
	return user, nil
}

type fakeSessionStore struct {
	sessions map[string]types.Session
}

func (f *fakeSessionStore) SelectSessionByAccessToken(token string) (types.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return types.Session{}, sql.ErrNoRows
	}
	return session, nil
}

func newAuthRouter(ur UserStore, sr SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded", AuthMiddleware(ur, sr), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"userId":  c.MustGet("user_id").(uuid.UUID),
		})
	})
	return router
}

func TestAuthMiddlewareAllowsLiveSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	accessToken, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)

	ur := &fakeUserStore{users: map[uuid.UUID]types.User{
		userID: {ID: userID, Email: "admin@ozmevsim.com", Role: types.RoleAdmin, IsActive: true},
	}}
	sr := &staticSessionStore{session: types.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     accessToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_NAME, Value: accessToken})
	newAuthRouter(ur, sr).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// A token that still verifies cryptographically must be rejected once its
// session row is gone; logout and rotation revoke access immediately.
func TestAuthMiddlewareRejectsRevokedSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	accessToken, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)

	ur := &fakeUserStore{users: map[uuid.UUID]types.User{
		userID: {ID: userID, Email: "admin@ozmevsim.com", Role: types.RoleAdmin, IsActive: true},
	}}
	sr := &fakeSessionStore{sessions: map[string]types.Session{}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_NAME, Value: accessToken})
	newAuthRouter(ur, sr).ServeHTTP(w, req)

	res := w.Result()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	cleared := map[string]bool{}
	for _, cookie := range res.Cookies() {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
		cleared[cookie.Name] = true
	}
	assert.True(t, cleared[configs.ACCESS_TOKEN_NAME])
	assert.True(t, cleared[configs.REFRESH_TOKEN_NAME])
}

func TestAuthMiddlewareRejectsInactiveUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	accessToken, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)

	ur := &fakeUserStore{users: map[uuid.UUID]types.User{
		userID: {ID: userID, Email: "pasif@ozmevsim.com", Role: types.RoleEditor, IsActive: false},
	}}
	sr := &staticSessionStore{session: types.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     accessToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_NAME, Value: accessToken})
	newAuthRouter(ur, sr).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	t.Parallel()

	ur := &fakeUserStore{users: map[uuid.UUID]types.User{}}
	sr := &fakeSessionStore{sessions: map[string]types.Session{}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	newAuthRouter(ur, sr).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// staticSessionStore returns the same row for any token lookup.
type staticSessionStore struct {
	session types.Session
}

func (s *staticSessionStore) SelectSessionByAccessToken(token string) (types.Session, error) {
	if s.session.Token != token {
		return types.Session{}, sql.ErrNoRows
	}
	return s.session, nil
}
