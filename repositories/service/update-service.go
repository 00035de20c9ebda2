package ServiceRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateService applies a partial update, keeping stored values for nil
// request fields.
func (r *Repository) UpdateService(id uuid.UUID, request types.ServiceUpdateRequest) (types.Service, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Update Service")

	var service types.Service

	query := `
		UPDATE services SET
			category_id = COALESCE($1, category_id),
			title = COALESCE($2, title),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			content = COALESCE($5, content),
			excerpt = COALESCE($6, excerpt),
			thumbnail = COALESCE($7, thumbnail),
			images = COALESCE($8, images),
			meta_title = COALESCE($9, meta_title),
			meta_description = COALESCE($10, meta_description),
			meta_keywords = COALESCE($11, meta_keywords),
			has_price = COALESCE($12, has_price),
			price_from = COALESCE($13, price_from),
			price_to = COALESCE($14, price_to),
			price_unit = COALESCE($15, price_unit),
			is_featured = COALESCE($16, is_featured),
			sort_order = COALESCE($17, sort_order),
			updated_at = NOW()
		WHERE id = $18
		RETURNING *`

	var images any
	if request.Images != nil {
		images = pq.Array(request.Images)
	}

	row := r.db.QueryRow(query,
		request.CategoryID,
		request.Title,
		request.Slug,
		request.Description,
		request.Content,
		request.Excerpt,
		request.Thumbnail,
		images,
		request.MetaTitle,
		request.MetaDescription,
		request.MetaKeywords,
		request.HasPrice,
		request.PriceFrom,
		request.PriceTo,
		request.PriceUnit,
		request.IsFeatured,
		request.SortOrder,
		id,
	)

	err := utils.ScanStructByDBTags(row, &service)
	if err != nil {
		return service, err
	}

	return service, nil
}
