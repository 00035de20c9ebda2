package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00004_faq.up.sql)
type FaqCategory struct {
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

// Table Model (database/migrations/00004_faq.up.sql)
type Faq struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CategoryID uuid.UUID `db:"category_id" json:"categoryId"`
	Question   string    `db:"question" json:"question"`
	Answer     string    `db:"answer" json:"answer"`
	SortOrder  int       `db:"sort_order" json:"order"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// FaqQueryOptions - closed set of list filters
type FaqQueryOptions struct {
	Search     string
	CategoryID uuid.UUID
	Active     *bool
	Limit      int
	Offset     int
}

// FaqCreateRequest - faq creation request
type FaqCreateRequest struct {
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
	Question   string    `json:"question" binding:"required,min=5,max=500"`
	Answer     string    `json:"answer" binding:"required,min=5"`
	SortOrder  int       `json:"order"`
}

// FaqUpdateRequest - partial update, nil fields are left untouched
type FaqUpdateRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
	Question   *string    `json:"question"`
	Answer     *string    `json:"answer"`
	SortOrder  *int       `json:"order"`
}
