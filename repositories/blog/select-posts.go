package BlogRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectPosts(options types.BlogQueryOptions) ([]types.BlogPost, int, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select Posts")

	var conditions []string
	var params []any
	paramCounter := 1

	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d)",
			paramCounter, paramCounter, paramCounter))
		params = append(params, "%"+options.Search+"%")
		paramCounter++
	}

	if options.CategoryID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", paramCounter))
		params = append(params, options.CategoryID)
		paramCounter++
	}

	if options.AuthorID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", paramCounter))
		params = append(params, options.AuthorID)
		paramCounter++
	}

	if options.Slug != "" {
		conditions = append(conditions, fmt.Sprintf("slug = $%d", paramCounter))
		params = append(params, options.Slug)
		paramCounter++
	}

	if options.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramCounter))
		params = append(params, options.Status)
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
	countQuery := "SELECT COUNT(*) FROM blog_posts" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("blog count query failed: %w", err)
	}

	query := "SELECT * FROM blog_posts" + whereClause

	allowedSortColumns := map[string]bool{
		"created_at":   true,
		"updated_at":   true,
		"published_at": true,
		"title":        true,
		"view_count":   true,
	}

	sortColumn := "created_at"
	if allowedSortColumns[options.SortBy] {
		sortColumn = options.SortBy
	}

	sortDirection := "DESC"
	if options.SortDirection == types.SortAsc {
		sortDirection = "ASC"
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
		return nil, 0, fmt.Errorf("blog query failed: %w", err)
	}
	defer rows.Close()

	var posts []types.BlogPost

	for rows.Next() {
		var post types.BlogPost
		if err := utils.ScanStructByDBTagsForRows(rows, &post); err != nil {
			return nil, 0, fmt.Errorf("error scanning blog row: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through blog posts: %w", err)
	}

	return posts, total, nil
}

// SelectPostBySlug fetches a published post and bumps its view counter in the
// same statement.
func (r *Repository) SelectPostBySlug(slug string) (types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Select Post By Slug")

	var post types.BlogPost

	query := `
		UPDATE blog_posts
		SET view_count = view_count + 1
		WHERE slug = $1 AND status = $2 AND is_active = TRUE
		RETURNING *`

	row := r.db.QueryRow(query, slug, types.BlogStatusPublished)
	err := utils.ScanStructByDBTags(row, &post)
	if err != nil {
		return post, err
	}

	return post, nil
}
