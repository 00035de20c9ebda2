package FaqHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectFaqs is the public question list, active rows only.
func (h *Handler) SelectFaqs(c *gin.Context) {
	options, err := parseFaqQueryParams(c)
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

	h.respondWithFaqs(c, options)
}

// SelectAllFaqs is the admin side list, inactive rows included.
func (h *Handler) SelectAllFaqs(c *gin.Context) {
	options, err := parseFaqQueryParams(c)
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

	h.respondWithFaqs(c, options)
}

func (h *Handler) respondWithFaqs(c *gin.Context, options types.FaqQueryOptions) {
	page, limit, offset := utils.ParsePagination(c)
	options.Limit = limit
	options.Offset = offset

	faqs, total, err := h.FaqRepository.SelectFaqs(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "Sorular getirilemedi.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"faqs":    faqs,
		"meta":    types.NewMeta(page, limit, total),
	})
}

func parseFaqQueryParams(c *gin.Context) (types.FaqQueryOptions, error) {
	var options types.FaqQueryOptions

	options.Search = c.Query("search")

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return options, errors.New("Geçersiz kategori ID formatı")
		}
		options.CategoryID = categoryID
	}

	return options, nil
}
