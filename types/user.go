package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00001_auth.up.sql)
type User struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	Name           *string    `db:"name" json:"name,omitempty"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	Role           Role       `db:"role" json:"role"`
	Avatar         *string    `db:"avatar" json:"avatar,omitempty"`
	IsActive       bool       `db:"is_active" json:"isActive"`
	LastLogin      *time.Time `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// UserProfileResponse - secure model to return user profile
type UserProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name,omitempty"`
	Role      Role       `json:"role"`
	Avatar    *string    `json:"avatar,omitempty"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UserCreateRequest - user creation request
type UserCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserLoginRequest - user login request
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (u User) Profile() UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Avatar:    u.Avatar,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
