package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00003_blog.up.sql)
type BlogCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	Color       *string   `db:"color" json:"color,omitempty"`
	SortOrder   int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Table Model (database/migrations/00003_blog.up.sql)
type BlogPost struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	CategoryID      uuid.UUID  `db:"category_id" json:"categoryId"`
	AuthorID        uuid.UUID  `db:"author_id" json:"authorId"`
	Title           string     `db:"title" json:"title"`
	Slug            string     `db:"slug" json:"slug"`
	Content         string     `db:"content" json:"content"`
	Excerpt         *string    `db:"excerpt" json:"excerpt,omitempty"`
	Thumbnail       *string    `db:"thumbnail" json:"thumbnail,omitempty"`
	Images          []string   `db:"images" json:"images"`
	MetaTitle       *string    `db:"meta_title" json:"metaTitle,omitempty"`
	MetaDescription *string    `db:"meta_description" json:"metaDescription,omitempty"`
	MetaKeywords    *string    `db:"meta_keywords" json:"metaKeywords,omitempty"`
	Status          BlogStatus `db:"status" json:"status"`
	IsActive        bool       `db:"is_active" json:"isActive"`
	IsFeatured      bool       `db:"is_featured" json:"isFeatured"`
	PublishedAt     *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	ReadTime        *int       `db:"read_time" json:"readTime,omitempty"`
	ViewCount       int        `db:"view_count" json:"viewCount"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// BlogQueryOptions - closed set of list filters
type BlogQueryOptions struct {
	Search        string
	CategoryID    uuid.UUID
	AuthorID      uuid.UUID
	Slug          string
	Status        BlogStatus
	Featured      *bool
	Active        *bool
	SortBy        string
	SortDirection SortDirection
	Limit         int
	Offset        int
}

// BlogCreateRequest - blog post creation request
type BlogCreateRequest struct {
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	Title           string    `json:"title" binding:"required,min=2,max=200"`
	Slug            string    `json:"slug" binding:"required,min=2,max=200"`
	Content         string    `json:"content" binding:"required"`
	Excerpt         *string   `json:"excerpt"`
	Thumbnail       *string   `json:"thumbnail"`
	Images          []string  `json:"images"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	MetaKeywords    *string   `json:"metaKeywords"`
	IsFeatured      bool      `json:"isFeatured"`
	ReadTime        *int      `json:"readTime"`
}

// BlogUpdateRequest - partial update, nil fields are left untouched
type BlogUpdateRequest struct {
	CategoryID      *uuid.UUID `json:"categoryId"`
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	Thumbnail       *string    `json:"thumbnail"`
	Images          []string   `json:"images"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *string    `json:"metaKeywords"`
	IsFeatured      *bool      `json:"isFeatured"`
	ReadTime        *int       `json:"readTime"`
}

// BlogStatusUpdateRequest - status transition request
type BlogStatusUpdateRequest struct {
	Status BlogStatus `json:"status" binding:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

// BlogCategoryCreateRequest - blog category creation request
type BlogCategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Slug        string  `json:"slug" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	SortOrder   int     `json:"order"`
}
