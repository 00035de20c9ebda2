package BlogHandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/configs"
	"github.com/clbasaran/backend-ozmevsim/types"
)

const sitemapCacheKey = "blog:sitemap"

type sitemapEntry struct {
	Slug        string     `json:"slug"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// SelectSitemap returns slug and date information for every published post.
// The response is cached, writes to the blog flush it.
func (h *Handler) SelectSitemap(c *gin.Context) {
	if cached, exists := h.Cache.Get(sitemapCacheKey); exists {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"pages":   json.RawMessage(cached),
			"cached":  true,
		})
		return
	}

	active := true
	options := types.BlogQueryOptions{
		Status:        types.BlogStatusPublished,
		Active:        &active,
		SortBy:        "updated_at",
		SortDirection: types.SortDesc,
		Limit:         10000,
	}

	posts, _, err := h.BlogRepository.SelectPosts(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Sitemap verileri getirilemedi.",
		})
		return
	}

	pages := make([]sitemapEntry, 0, len(posts))
	for _, post := range posts {
		pages = append(pages, sitemapEntry{
			Slug:        post.Slug,
			UpdatedAt:   post.UpdatedAt,
			PublishedAt: post.PublishedAt,
		})
	}

	if data, err := json.Marshal(pages); err == nil {
		h.Cache.SetWithTTL(sitemapCacheKey, data, configs.SITEMAP_CACHE_TTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pages":   pages,
		"cached":  false,
	})
}
