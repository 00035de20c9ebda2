package ServiceRepository

import (
	"time"

	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateService(request types.ServiceCreateRequest) (types.Service, error) {
	defer utils.TimeTrack(time.Now(), "Service -> Create Service")

	var service types.Service

	query := `
		INSERT INTO services (
			category_id, title, slug, description, content, excerpt, thumbnail, images,
			meta_title, meta_description, meta_keywords,
			has_price, price_from, price_to, price_unit, is_featured, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING *`

	row := r.db.QueryRow(query,
		request.CategoryID,
		request.Title,
		request.Slug,
		request.Description,
		request.Content,
		request.Excerpt,
		request.Thumbnail,
		pq.Array(request.Images),
		request.MetaTitle,
		request.MetaDescription,
		request.MetaKeywords,
		request.HasPrice,
		request.PriceFrom,
		request.PriceTo,
		request.PriceUnit,
		request.IsFeatured,
		request.SortOrder,
	)

	err := utils.ScanStructByDBTags(row, &service)
	if err != nil {
		return service, err
	}

	return service, nil
}
