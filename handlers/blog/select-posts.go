package BlogHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectPosts is the public blog list. Only published and active posts are
// visible, regardless of query parameters.
func (h *Handler) SelectPosts(c *gin.Context) {
	options, err := parseBlogQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_query",
			"message": err.Error(),
		})
		return
	}

	active := true
	options.Active = &active
	options.Status = types.BlogStatusPublished

	h.respondWithPosts(c, options)
}

// SelectAllPosts is the admin side list with free status filtering.
func (h *Handler) SelectAllPosts(c *gin.Context) {
	options, err := parseBlogQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_query",
			"message": err.Error(),
		})
		return
	}

	if statusStr := c.Query("status"); statusStr != "" {
		options.Status = types.BlogStatus(statusStr)
	}

	if activeStr := c.Query("active"); activeStr != "" {
		active := activeStr == "true"
		options.Active = &active
	}

	h.respondWithPosts(c, options)
}

func (h *Handler) respondWithPosts(c *gin.Context, options types.BlogQueryOptions) {
	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	posts, total, err := h.BlogRepository.SelectPosts(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Blog yazıları getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
		"meta":    types.NewMeta(page, limit, total),
	})
}

// SelectPostBySlug returns a single published post and counts the view.
func (h *Handler) SelectPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.BlogRepository.SelectPostBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "post_not_found",
				"message": "Blog yazısı bulunamadı.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Blog yazısı getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// Query parametrelerini parse eden yardımcı fonksiyon
func parseBlogQueryParams(c *gin.Context) (types.BlogQueryOptions, error) {
	var options types.BlogQueryOptions

	options.Search = c.Query("search")

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return options, errors.New("Geçersiz kategori ID formatı")
		}
		options.CategoryID = categoryID
	}

	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := uuid.Parse(authorStr)
		if err != nil {
			return options, errors.New("Geçersiz yazar ID formatı")
		}
		options.AuthorID = authorID
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		options.Featured = &featured
	}

	options.SortBy = c.DefaultQuery("sort_by", "published_at")

	switch c.DefaultQuery("sort_dir", "desc") {
	case "asc":
		options.SortDirection = types.SortAsc
	case "desc":
		options.SortDirection = types.SortDesc
	default:
		return options, errors.New("Geçersiz sort_dir değeri. 'asc' veya 'desc' kullanın")
	}

	return options, nil
}
