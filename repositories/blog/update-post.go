package BlogRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdatePost applies a partial update, keeping stored values for nil request
// fields.
func (r *Repository) UpdatePost(id uuid.UUID, request types.BlogUpdateRequest) (types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Update Post")

	var post types.BlogPost

	query := `
		UPDATE blog_posts SET
			category_id = COALESCE($1, category_id),
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			content = COALESCE($4, content),
			excerpt = COALESCE($5, excerpt),
			thumbnail = COALESCE($6, thumbnail),
			images = COALESCE($7, images),
			meta_title = COALESCE($8, meta_title),
			meta_description = COALESCE($9, meta_description),
			meta_keywords = COALESCE($10, meta_keywords),
			is_featured = COALESCE($11, is_featured),
			read_time = COALESCE($12, read_time),
			updated_at = NOW()
		WHERE id = $13
		RETURNING *`

	var images any
	if request.Images != nil {
		images = pq.Array(request.Images)
	}

	row := r.db.QueryRow(query,
		request.CategoryID,
		request.Title,
		request.Slug,
		request.Content,
		request.Excerpt,
		request.Thumbnail,
		images,
		request.MetaTitle,
		request.MetaDescription,
		request.MetaKeywords,
		request.IsFeatured,
		request.ReadTime,
		id,
	)

	err := utils.ScanStructByDBTags(row, &post)
	if err != nil {
		return post, err
	}

	return post, nil
}
