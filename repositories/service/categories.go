package ServiceRepository

import (
	"fmt"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectAllCategories() ([]types.ServiceCategory, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Select All Categories")

	query := `SELECT * FROM service_categories WHERE is_active = TRUE ORDER BY sort_order ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("service category query failed: %w", err)
	}
	defer rows.Close()

	var categories []types.ServiceCategory

	for rows.Next() {
		var category types.ServiceCategory
		if err := utils.ScanStructByDBTagsForRows(rows, &category); err != nil {
			return nil, fmt.Errorf("error scanning service category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating through service categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CreateCategory(request types.CategoryCreateRequest) (types.ServiceCategory, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Create Category")

	var category types.ServiceCategory

	query := `INSERT INTO service_categories (name, slug, description, icon, sort_order) VALUES ($1, $2, $3, $4, $5) RETURNING *`

	row := r.db.QueryRow(query, request.Name, request.Slug, request.Description, request.Icon, request.SortOrder)
	err := utils.ScanStructByDBTags(row, &category)
	if err != nil {
		return category, err
	}

	return category, nil
}
