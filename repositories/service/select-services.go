package ServiceRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectServices(options types.ServiceQueryOptions) ([]types.Service, int, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Select Services")

	var conditions []string
	var params []any
	paramCounter := 1

	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR content ILIKE $%d)",
			paramCounter, paramCounter, paramCounter))
		params = append(params, "%"+options.Search+"%")
		paramCounter++
	}

	if options.CategoryID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", paramCounter))
		params = append(params, options.CategoryID)
		paramCounter++
	}

	if options.Slug != "" {
		conditions = append(conditions, fmt.Sprintf("slug = $%d", paramCounter))
		params = append(params, options.Slug)
		paramCounter++
	}

	if options.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", paramCounter))
		params = append(params, *options.Featured)
		paramCounter++
	}

	if options.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", paramCounter))
		params = append(params, *options.Active)
		paramCounter++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM services" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("service count query failed: %w", err)
	}

	query := "SELECT * FROM services" + whereClause

	allowedSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"sort_order": true,
	}

	sortColumn := "sort_order"
	if allowedSortColumns[options.SortBy] {
		sortColumn = options.SortBy
	}

	sortDirection := "ASC"
	if options.SortDirection == types.SortDesc {
		sortDirection = "DESC"
	}

	query += fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortDirection)

	if options.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramCounter)
		params = append(params, options.Limit)
		paramCounter++

		if options.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", paramCounter)
			params = append(params, options.Offset)
		}
	}

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("service query failed: %w", err)
	}
	defer rows.Close()

	var services []types.Service

	for rows.Next() {
		var service types.Service
		if err := utils.ScanStructByDBTagsForRows(rows, &service); err != nil {
			return nil, 0, fmt.Errorf("error scanning service row: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through services: %w", err)
	}

	return services, total, nil
}

func (r *Repository) SelectServiceBySlug(slug string) (types.Service, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Select Service By Slug")

	var service types.Service

	query := `SELECT * FROM services WHERE slug = $1 AND is_active = TRUE`

	row := r.db.QueryRow(query, slug)
	err := utils.ScanStructByDBTags(row, &service)
	if err != nil {
		return service, err
	}

	return service, nil
}
