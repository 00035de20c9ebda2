package BlogRepository

import (
	"fmt"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectAllCategories() ([]types.BlogCategory, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select All Categories")

	query := `SELECT * FROM blog_categories WHERE is_active = TRUE ORDER BY sort_order ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("blog category query failed: %w", err)
	}
	defer rows.Close()

	var categories []types.BlogCategory

	for rows.Next() {
		var category types.BlogCategory
		if err := utils.ScanStructByDBTagsForRows(rows, &category); err != nil {
			return nil, fmt.Errorf("error scanning blog category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating through blog categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CreateCategory(request types.BlogCategoryCreateRequest) (types.BlogCategory, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Create Category")

	var category types.BlogCategory

	query := `INSERT INTO blog_categories (name, slug, description, color, sort_order) VALUES ($1, $2, $3, $4, $5) RETURNING *`

	row := r.db.QueryRow(query, request.Name, request.Slug, request.Description, request.Color, request.SortOrder)
	err := utils.ScanStructByDBTags(row, &category)
	if err != nil {
		return category, err
	}

	return category, nil
}
