package ProductHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectProducts is the public product list. Only active products are
// returned, other filters come from the query string.
func (h *Handler) SelectProducts(c *gin.Context) {
	options, err := parseProductQueryParams(c)
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

	h.respondWithProducts(c, options)
}

// SelectAllProducts is the admin side list, inactive rows included.
func (h *Handler) SelectAllProducts(c *gin.Context) {
	options, err := parseProductQueryParams(c)
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

	h.respondWithProducts(c, options)
}

func (h *Handler) respondWithProducts(c *gin.Context, options types.ProductQueryOptions) {
	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	products, total, err := h.ProductRepository.SelectProducts(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Ürünler getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"meta":     types.NewMeta(page, limit, total),
	})
}

func (h *Handler) SelectProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.ProductRepository.SelectProductBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "product_not_found",
				"message": "Ürün bulunamadı.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Ürün getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// Query parametrelerini parse eden yardımcı fonksiyon
func parseProductQueryParams(c *gin.Context) (types.ProductQueryOptions, error) {
	var options types.ProductQueryOptions

	options.Search = c.Query("search")
	options.Brand = c.Query("brand")

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

	if hasPriceStr := c.Query("has_price"); hasPriceStr != "" {
		hasPrice := hasPriceStr == "true"
		options.HasPrice = &hasPrice
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
