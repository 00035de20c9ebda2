package AuthHandler

import (
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
)

// UserStore is the credential-side slice of the user repository.
type UserStore interface {
	SelectUserByEmail(email string) (types.User, error)
	SelectUserByID(id uuid.UUID) (types.User, error)
	CreateNewUser(request types.UserCreateRequest) (types.User, error)
	UpdateLastLogin(id uuid.UUID, lastLogin time.Time) error
}

// SessionStore is the session-side slice of the session repository. The
// stored row, not the token, decides whether a session is still valid.
type SessionStore interface {
	CreateSession(input types.SessionCreateInput) (types.Session, error)
	SelectSessionByAccessToken(token string) (types.Session, error)
	SelectSessionByRefreshToken(refreshToken string) (types.Session, error)
	UpdateSessionTokens(id uuid.UUID, token, refreshToken string) error
	DeleteSessionByID(id uuid.UUID) error
	DeleteSessionsByUserID(userID uuid.UUID) error
}

type Handler struct {
	Users    UserStore
	Sessions SessionStore
}

func NewHandler(u UserStore, s SessionStore) *Handler {
	return &Handler{
		Users:    u,
		Sessions: s,
	}
}
