package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00005_contact.up.sql)
type Contact struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     *string       `db:"phone" json:"phone,omitempty"`
	Company   *string       `db:"company" json:"company,omitempty"`
	Subject   string        `db:"subject" json:"subject"`
	Message   string        `db:"message" json:"message"`
	Status    ContactStatus `db:"status" json:"status"`
	IsRead    bool          `db:"is_read" json:"isRead"`
	Notes     *string       `db:"notes" json:"notes,omitempty"`
	IPAddress *string       `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent *string       `db:"user_agent" json:"userAgent,omitempty"`
	Source    *string       `db:"source" json:"source,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

// ContactQueryOptions - closed set of list filters
type ContactQueryOptions struct {
	Search string
	Status ContactStatus
	IsRead *bool
	Limit  int
	Offset int
}

// ContactCreateRequest - public contact form submission
type ContactCreateRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Subject string  `json:"subject" binding:"required,min=2,max=200"`
	Message string  `json:"message" binding:"required,min=10,max=5000"`
}

// ContactStatusUpdateRequest - admin side triage update
type ContactStatusUpdateRequest struct {
	Status *ContactStatus `json:"status" binding:"omitempty,oneof=NEW IN_PROGRESS COMPLETED SPAM"`
	IsRead *bool          `json:"isRead"`
	Notes  *string        `json:"notes"`
}
