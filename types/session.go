package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00001_auth.up.sql)
//
// The session row is the authoritative validity source for a token pair. A
// cryptographically valid token whose value no longer matches a live row has
// been rotated away or revoked and must be rejected.
type Session struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"userId"`
	Token        string    `db:"token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expiresAt"`
	UserAgent    *string   `db:"user_agent" json:"userAgent,omitempty"`
	IPAddress    *string   `db:"ip_address" json:"ipAddress,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// SessionCreateInput - fields required to persist a new session
type SessionCreateInput struct {
	UserID       uuid.UUID
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	UserAgent    string
	IPAddress    string
}
