package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clbasaran/backend-ozmevsim/services/limiter"
)

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func newRateLimitedRouter(store limiter.Store, max int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	m := NewRateLimitMiddleware(store, "test", max, time.Minute)

	router := gin.New()
	router.POST("/limited", m.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimitAllowsUntilThreshold(t *testing.T) {
	router := newRateLimitedRouter(limiter.NewMemoryStore(), 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/limited", nil)
		req.Header.Set("X-Real-IP", "203.0.113.7")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/limited", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitKeysByClientIP(t *testing.T) {
	router := newRateLimitedRouter(limiter.NewMemoryStore(), 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/limited", nil)
	req.Header.Set("X-Real-IP", "203.0.113.1")
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/limited", nil)
	req.Header.Set("X-Real-IP", "203.0.113.2")
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimitFailsOpenOnStoreError(t *testing.T) {
	router := newRateLimitedRouter(failingStore{}, 1)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/limited", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
