package AuthHandler

import (
	"bytes"
	"database/sql"
	"encoding/json"
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

// fakeUserStore ve fakeSessionStore, repository katmanını veritabanı olmadan
// taklit eder.
type fakeUserStore struct {
	users map[string]types.User
}

func (f *fakeUserStore) SelectUserByEmail(email string) (types.User, error) {
	user, ok := f.users[email]
	if !ok {
		return types.User{}, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) SelectUserByID(id uuid.UUID) (types.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, sql.ErrNoRows
}

func (f *fakeUserStore) CreateNewUser(request types.UserCreateRequest) (types.User, error) {
	hashed, err := utils.EncryptPassword(request.Password)
	if err != nil {
		return types.User{}, err
	}

	user := types.User{
		ID:             uuid.New(),
		Email:          request.Email,
		Name:           &request.Name,
		HashedPassword: hashed,
		Role:           types.RoleUser,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) UpdateLastLogin(id uuid.UUID, lastLogin time.Time) error {
	return nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]types.Session
}

func (f *fakeSessionStore) CreateSession(input types.SessionCreateInput) (types.Session, error) {
	session := types.Session{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Token:        input.Token,
		RefreshToken: input.RefreshToken,
		ExpiresAt:    input.ExpiresAt,
		CreatedAt:    time.Now(),
	}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeSessionStore) SelectSessionByAccessToken(token string) (types.Session, error) {
	for _, session := range f.sessions {
		if session.Token == token && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return types.Session{}, sql.ErrNoRows
}

func (f *fakeSessionStore) SelectSessionByRefreshToken(refreshToken string) (types.Session, error) {
	for _, session := range f.sessions {
		if session.RefreshToken == refreshToken && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return types.Session{}, sql.ErrNoRows
}

func (f *fakeSessionStore) UpdateSessionTokens(id uuid.UUID, token, refreshToken string) error {
	session, ok := f.sessions[id]
	if !ok {
		return sql.ErrNoRows
	}
	session.Token = token
	session.RefreshToken = refreshToken
	f.sessions[id] = session
	return nil
}

func (f *fakeSessionStore) DeleteSessionByID(id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) DeleteSessionsByUserID(userID uuid.UUID) error {
	for id, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeUserStore, *fakeSessionStore) {
	t.Helper()

	hashed, err := utils.EncryptPassword("dogru-sifre")
	require.NoError(t, err)

	users := &fakeUserStore{users: map[string]types.User{
		"admin@ozmevsim.com": {
			ID:             uuid.New(),
			Email:          "admin@ozmevsim.com",
			HashedPassword: hashed,
			Role:           types.RoleAdmin,
			IsActive:       true,
		},
		"pasif@ozmevsim.com": {
			ID:             uuid.New(),
			Email:          "pasif@ozmevsim.com",
			HashedPassword: hashed,
			Role:           types.RoleUser,
			IsActive:       false,
		},
	}}
	sessions := &fakeSessionStore{sessions: make(map[uuid.UUID]types.Session)}

	return NewHandler(users, sessions), users, sessions
}

func newAuthRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.Refresh)
	router.POST("/auth/logout", h.Logout)
	return router
}

func doLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(gin.H{"email": email, "password": password})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func cookieValue(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()

	res := w.Result()
	defer res.Body.Close()

	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func TestLoginSuccess(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	router := newAuthRouter(h)

	w := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	require.Equal(t, http.StatusOK, w.Code)

	accessToken := cookieValue(t, w, configs.ACCESS_TOKEN_NAME)
	refreshToken := cookieValue(t, w, configs.REFRESH_TOKEN_NAME)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	// Both tokens must verify and carry the right kind
	userID, err := utils.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	_, err = utils.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)

	// The session row stores exactly this pair
	session, err := sessions.SelectSessionByAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, refreshToken, session.RefreshToken)

	// Response never leaks the password hash
	assert.NotContains(t, w.Body.String(), "hashed_password")
	assert.NotContains(t, w.Body.String(), "hashedPassword")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	unknown := doLogin(t, router, "yok@ozmevsim.com", "dogru-sifre")
	wrongPassword := doLogin(t, router, "admin@ozmevsim.com", "yanlis-sifre")
	inactive := doLogin(t, router, "pasif@ozmevsim.com", "dogru-sifre")

	for _, w := range []*httptest.ResponseRecorder{unknown, wrongPassword, inactive} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// Aynı gövde, hangi kontrolün düştüğü dışarıdan ayırt edilemez
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
	assert.Equal(t, unknown.Body.String(), inactive.Body.String())
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshRotatesTokens(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	router := newAuthRouter(h)

	login := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	require.Equal(t, http.StatusOK, login.Code)

	oldAccess := cookieValue(t, login, configs.ACCESS_TOKEN_NAME)
	oldRefresh := cookieValue(t, login, configs.REFRESH_TOKEN_NAME)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: configs.REFRESH_TOKEN_NAME, Value: oldRefresh})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	newAccess := cookieValue(t, w, configs.ACCESS_TOKEN_NAME)
	newRefresh := cookieValue(t, w, configs.REFRESH_TOKEN_NAME)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
	assert.NotEqual(t, oldAccess, newAccess)
	assert.NotEqual(t, oldRefresh, newRefresh)

	// The old pair no longer matches any row
	_, err := sessions.SelectSessionByAccessToken(oldAccess)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = sessions.SelectSessionByRefreshToken(oldRefresh)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// The new pair does
	_, err = sessions.SelectSessionByRefreshToken(newRefresh)
	assert.NoError(t, err)
}

func TestRefreshRejectsAccessTokenCookie(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	login := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	accessToken := cookieValue(t, login, configs.ACCESS_TOKEN_NAME)

	// Kind segregation: an access token in the refresh cookie must fail
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: configs.REFRESH_TOKEN_NAME, Value: accessToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshWithoutCookie(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshAfterLogoutFails(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	login := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	accessToken := cookieValue(t, login, configs.ACCESS_TOKEN_NAME)
	refreshToken := cookieValue(t, login, configs.REFRESH_TOKEN_NAME)

	logout := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_NAME, Value: accessToken})
	router.ServeHTTP(logout, req)
	require.Equal(t, http.StatusOK, logout.Code)

	// The refresh token is still cryptographically valid but its row is gone
	w := httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: configs.REFRESH_TOKEN_NAME, Value: refreshToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	h, users, sessions := newTestHandler(t)
	router := newAuthRouter(h)

	admin, err := users.SelectUserByEmail("admin@ozmevsim.com")
	require.NoError(t, err)

	// Auth middleware'in yerine user_id'yi doğrudan context'e koyar
	router.POST("/auth/logout-all", func(c *gin.Context) {
		c.Set("user_id", admin.ID)
	}, h.LogoutAll)

	first := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	second := doLogin(t, router, "admin@ozmevsim.com", "dogru-sifre")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	require.Len(t, sessions.sessions, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout-all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sessions.sessions)
}

func TestLogoutIsIdempotent(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := newAuthRouter(h)

	// No cookie at all
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Stale cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_NAME, Value: "stale-token"})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Both answers clear the cookies
	res := w.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}
