package ProductRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectProducts(options types.ProductQueryOptions) ([]types.Product, int, error) {
	defer utils.TimeTrack(time.Now(), "Product -> Select Products")

	var conditions []string
	var params []any
	paramCounter := 1

	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR content ILIKE $%d OR brand ILIKE $%d OR sku ILIKE $%d)",
			paramCounter, paramCounter, paramCounter, paramCounter, paramCounter))
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

	if options.Brand != "" {
		conditions = append(conditions, fmt.Sprintf("brand ILIKE $%d", paramCounter))
		params = append(params, "%"+options.Brand+"%")
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

	if options.HasPrice != nil {
		conditions = append(conditions, fmt.Sprintf("has_price = $%d", paramCounter))
		params = append(params, *options.HasPrice)
		paramCounter++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Total count with the same filters, for pagination meta
	var total int
	countQuery := "SELECT COUNT(*) FROM products" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("product count query failed: %w", err)
	}

	query := "SELECT * FROM products" + whereClause

	// Sort columns are whitelisted, never taken from input verbatim
	allowedSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"price":      true,
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
		return nil, 0, fmt.Errorf("product query failed: %w", err)
	}
	defer rows.Close()

	var products []types.Product

	for rows.Next() {
		var product types.Product
		if err := utils.ScanStructByDBTagsForRows(rows, &product); err != nil {
			return nil, 0, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through products: %w", err)
	}

	return products, total, nil
}

func (r *Repository) SelectProductBySlug(slug string) (types.Product, error) {
	defer utils.TimeTrack(time.Now(), "Product -> Select Product By Slug")

	var product types.Product

	query := `SELECT * FROM products WHERE slug = $1 AND is_active = TRUE`

	row := r.db.QueryRow(query, slug)
	err := utils.ScanStructByDBTags(row, &product)
	if err != nil {
		return product, err
	}

	return product, nil
}
