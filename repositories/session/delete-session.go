package SessionRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) DeleteSessionByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Session -> Delete Session By ID")

	query := `DELETE FROM sessions WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *Repository) DeleteSessionsByUserID(userID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Session -> Delete Sessions By User ID")

	query := `DELETE FROM sessions WHERE user_id = $1`

	_, err := r.db.Exec(query, userID)
	return err
}

// DeleteExpiredSessions removes rows that are already logically absent. Purely
// housekeeping, lookups never return expired rows either way.
func (r *Repository) DeleteExpiredSessions() (int64, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Delete Expired Sessions")

	query := `DELETE FROM sessions WHERE expires_at <= NOW()`

	result, err := r.db.Exec(query)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
