package ProductRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateProduct applies a partial update. Nil request fields keep the stored
// value through COALESCE.
func (r *Repository) UpdateProduct(id uuid.UUID, request types.ProductUpdateRequest) (types.Product, error) {
	defer utils.TimeTrack(time.Now(), "Product -> Update Product")

	var product types.Product

	query := `
		UPDATE products SET
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
			brand = COALESCE($12, brand),
			sku = COALESCE($13, sku),
			has_price = COALESCE($14, has_price),
			price = COALESCE($15, price),
			price_unit = COALESCE($16, price_unit),
			specifications = COALESCE($17, specifications),
			is_featured = COALESCE($18, is_featured),
			sort_order = COALESCE($19, sort_order),
			updated_at = NOW()
		WHERE id = $20
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
		request.Brand,
		request.SKU,
		request.HasPrice,
		request.Price,
		request.PriceUnit,
		request.Specifications,
		request.IsFeatured,
		request.SortOrder,
		id,
	)

	err := utils.ScanStructByDBTags(row, &product)
	if err != nil {
		return product, err
	}

	return product, nil
}
