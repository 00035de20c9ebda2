package BlogRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreatePost(request types.BlogCreateRequest, authorID uuid.UUID) (types.BlogPost, error) {
	defer utils.TimeTrack(time.Now(), "Blog -> Create Post")

	var post types.BlogPost

	query := `
		INSERT INTO blog_posts (
			category_id, author_id, title, slug, content, excerpt, thumbnail, images,
			meta_title, meta_description, meta_keywords, is_featured, read_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING *`

	row := r.db.QueryRow(query,
		request.CategoryID,
		authorID,
		request.Title,
		request.Slug,
		request.Content,
		request.Excerpt,
		request.Thumbnail,
		pq.Array(request.Images),
		request.MetaTitle,
		request.MetaDescription,
		request.MetaKeywords,
		request.IsFeatured,
		request.ReadTime,
	)

	err := utils.ScanStructByDBTags(row, &post)
	if err != nil {
		return post, err
	}

	return post, nil
}
