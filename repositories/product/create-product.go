package ProductRepository

import (
	"time"

	"github.com/lib/pq"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateProduct(request types.ProductCreateRequest) (types.Product, error) {
	defer utils.TimeTrack(time.Now(), "Product -> Create Product")

	var product types.Product

	query := `
		INSERT INTO products (
			category_id, title, slug, description, content, excerpt, thumbnail, images,
			meta_title, meta_description, meta_keywords, brand, sku,
			has_price, price, price_unit, specifications, is_featured, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
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
		request.Brand,
		request.SKU,
		request.HasPrice,
		request.Price,
		request.PriceUnit,
		request.Specifications,
		request.IsFeatured,
		request.SortOrder,
	)

	err := utils.ScanStructByDBTags(row, &product)
	if err != nil {
		return product, err
	}

	return product, nil
}
