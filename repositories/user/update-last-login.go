package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) UpdateLastLogin(id uuid.UUID, lastLogin time.Time) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Last Login")

	query := `UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`

	_, err := r.db.Exec(query, lastLogin, id)
	return err
}
