package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetAndGet(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)

	c.Set("anahtar", []byte("deger"))

	value, exists := c.Get("anahtar")
	assert.True(t, exists)
	assert.Equal(t, []byte("deger"), value)

	_, exists = c.Get("yok")
	assert.False(t, exists)
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)

	c.SetWithTTL("kisa", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, exists := c.Get("kisa")
	assert.False(t, exists)
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Delete("a")
	_, exists := c.Get("a")
	assert.False(t, exists)

	c.Clear()
	_, exists = c.Get("b")
	assert.False(t, exists)
}

func TestCacheClearPrefix(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)

	c.Set("blog:sitemap", []byte("1"))
	c.Set("blog:list", []byte("2"))
	c.Set("admin:stats", []byte("3"))

	c.ClearPrefix("blog:")

	_, exists := c.Get("blog:sitemap")
	assert.False(t, exists)
	_, exists = c.Get("blog:list")
	assert.False(t, exists)

	_, exists = c.Get("admin:stats")
	assert.True(t, exists)
}
