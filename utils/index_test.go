package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/items", 1, 20, 0},
		{"explicit", "/items?page=3&limit=10", 3, 10, 20},
		{"clamped limit", "/items?limit=500", 1, 100, 0},
		{"invalid values", "/items?page=-1&limit=abc", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.target)

			page, limit, offset := ParsePagination(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestGetTrueClientIP(t *testing.T) {
	c := newTestContext("/")
	c.Request.Header.Set("X-Real-IP", "203.0.113.7")
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetTrueClientIP(c))

	c = newTestContext("/")
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "10.0.0.1", GetTrueClientIP(c))
}

func TestGenerateRandomString(t *testing.T) {
	value := GenerateRandomString(16)
	assert.Len(t, value, 16)

	for _, r := range value {
		assert.Contains(t, Alphabet, string(r))
	}
}
