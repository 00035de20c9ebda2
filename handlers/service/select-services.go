package ServiceHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectServices is the public service list, active rows only.
func (h *Handler) SelectServices(c *gin.Context) {
	options, err := parseServiceQueryParams(c)
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

	h.respondWithServices(c, options)
}

// SelectAllServices is the admin side list, inactive rows included.
func (h *Handler) SelectAllServices(c *gin.Context) {
	options, err := parseServiceQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_query",
			"message": err.Error(),
		})
		return
	}

	if activeStr := c.Query("active"); activeStr != "" {
		active := activeStr == "true"
		options.Active = &active
	}

	h.respondWithServices(c, options)
}

func (h *Handler) respondWithServices(c *gin.Context, options types.ServiceQueryOptions) {
	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	services, total, err := h.ServiceRepository.SelectServices(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Hizmetler getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": services,
		"meta":     types.NewMeta(page, limit, total),
	})
}

func (h *Handler) SelectServiceBySlug(c *gin.Context) {
	slug := c.Param("slug")

	service, err := h.ServiceRepository.SelectServiceBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "service_not_found",
				"message": "Hizmet bulunamadı.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Hizmet getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": service,
	})
}

// Query parametrelerini parse eden yardımcı fonksiyon
func parseServiceQueryParams(c *gin.Context) (types.ServiceQueryOptions, error) {
	var options types.ServiceQueryOptions

	options.Search = c.Query("search")

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return options, errors.New("Geçersiz kategori ID formatı")
		}
		options.CategoryID = categoryID
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		options.Featured = &featured
	}

	options.SortBy = c.DefaultQuery("sort_by", "sort_order")

	switch c.DefaultQuery("sort_dir", "asc") {
	case "asc":
		options.SortDirection = types.SortAsc
	case "desc":
		options.SortDirection = types.SortDesc
	default:
		return options, errors.New("Geçersiz sort_dir değeri. 'asc' veya 'desc' kullanın")
	}

	return options, nil
}
