package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00002_catalog.up.sql)
type ProductCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	Icon        *string   `db:"icon" json:"icon,omitempty"`
	SortOrder   int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Table Model (database/migrations/00002_catalog.up.sql)
type Product struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CategoryID      uuid.UUID `db:"category_id" json:"categoryId"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	Description     *string   `db:"description" json:"description,omitempty"`
	Content         *string   `db:"content" json:"content,omitempty"`
	Excerpt         *string   `db:"excerpt" json:"excerpt,omitempty"`
	Thumbnail       *string   `db:"thumbnail" json:"thumbnail,omitempty"`
	Images          []string  `db:"images" json:"images"`
	MetaTitle       *string   `db:"meta_title" json:"metaTitle,omitempty"`
	MetaDescription *string   `db:"meta_description" json:"metaDescription,omitempty"`
	MetaKeywords    *string   `db:"meta_keywords" json:"metaKeywords,omitempty"`
	Brand           *string   `db:"brand" json:"brand,omitempty"`
	SKU             *string   `db:"sku" json:"sku,omitempty"`
	HasPrice        bool      `db:"has_price" json:"hasPrice"`
	Price           *float64  `db:"price" json:"price,omitempty"`
	PriceUnit       *string   `db:"price_unit" json:"priceUnit,omitempty"`
	Specifications  JSONB     `db:"specifications" json:"specifications,omitempty"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	IsFeatured      bool      `db:"is_featured" json:"isFeatured"`
	SortOrder       int       `db:"sort_order" json:"order"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// ProductQueryOptions - closed set of list filters, each mapped to a
// parameterized condition
type ProductQueryOptions struct {
	Search        string
	CategoryID    uuid.UUID
	Slug          string
	Brand         string
	Featured      *bool
	Active        *bool
	HasPrice      *bool
	SortBy        string
	SortDirection SortDirection
	Limit         int
	Offset        int
}

// ProductCreateRequest - product creation request
type ProductCreateRequest struct {
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	Title           string    `json:"title" binding:"required,min=2,max=200"`
	Slug            string    `json:"slug" binding:"required,min=2,max=200"`
	Description     *string   `json:"description"`
	Content         *string   `json:"content"`
	Excerpt         *string   `json:"excerpt"`
	Thumbnail       *string   `json:"thumbnail"`
	Images          []string  `json:"images"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	MetaKeywords    *string   `json:"metaKeywords"`
	Brand           *string   `json:"brand"`
	SKU             *string   `json:"sku"`
	HasPrice        bool      `json:"hasPrice"`
	Price           *float64  `json:"price"`
	PriceUnit       *string   `json:"priceUnit"`
	Specifications  JSONB     `json:"specifications"`
	IsFeatured      bool      `json:"isFeatured"`
	SortOrder       int       `json:"order"`
}

// ProductUpdateRequest - partial update, nil fields are left untouched
type ProductUpdateRequest struct {
	CategoryID      *uuid.UUID `json:"categoryId"`
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Description     *string    `json:"description"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	Thumbnail       *string    `json:"thumbnail"`
	Images          []string   `json:"images"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *string    `json:"metaKeywords"`
	Brand           *string    `json:"brand"`
	SKU             *string    `json:"sku"`
	HasPrice        *bool      `json:"hasPrice"`
	Price           *float64   `json:"price"`
	PriceUnit       *string    `json:"priceUnit"`
	Specifications  JSONB      `json:"specifications"`
	IsFeatured      *bool      `json:"isFeatured"`
	SortOrder       *int       `json:"order"`
}

// CategoryCreateRequest - shared create shape for category tables
type CategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Slug        string  `json:"slug" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   int     `json:"order"`
}
