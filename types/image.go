package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00006_media.up.sql)
type Image struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	URL         string    `db:"url" json:"url"`
	ObjectKey   string    `db:"object_key" json:"objectKey"`
	Filename    string    `db:"filename" json:"filename"`
	AltText     *string   `db:"alt_text" json:"altText,omitempty"`
	FileType    string    `db:"file_type" json:"fileType"`
	SizeInBytes int64     `db:"size_in_bytes" json:"sizeInBytes"`
	Width       *int      `db:"width" json:"width,omitempty"`
	Height      *int      `db:"height" json:"height,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// PresignURLInput - request for a direct-to-bucket upload URL
type PresignURLInput struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	SizeInBytes int64  `json:"sizeInBytes" binding:"required,gt=0"`
}

// PresignedURLOutput - one-time PUT target plus the final public URL
type PresignedURLOutput struct {
	PresignedURL string    `json:"presignedUrl"`
	UploadURL    string    `json:"uploadUrl"`
	ObjectKey    string    `json:"objectKey"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ConfirmUploadInput - metadata persisted after the client finished the PUT
type ConfirmUploadInput struct {
	ObjectKey   string  `json:"objectKey" binding:"required"`
	URL         string  `json:"url" binding:"required"`
	Filename    string  `json:"filename" binding:"required"`
	FileType    string  `json:"fileType" binding:"required"`
	SizeInBytes int64   `json:"sizeInBytes" binding:"required,gt=0"`
	AltText     *string `json:"altText"`
	Width       *int    `json:"width"`
	Height      *int    `json:"height"`
}

// ImageQueryOptions - closed set of list filters
type ImageQueryOptions struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}
