package SessionRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateSessionTokens rotates a session's token pair in place. The previous
// values stop matching the row and are dead from this point on.
func (r *Repository) UpdateSessionTokens(id uuid.UUID, token, refreshToken string) error {
	defer utils.TimeTrack(time.Now(), "Session -> Update Session Tokens")

	query := `UPDATE sessions SET token = $1, refresh_token = $2 WHERE id = $3`

	result, err := r.db.Exec(query, token, refreshToken, id)
	if err != nil {
		return fmt.Errorf("failed to rotate session tokens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("session %s not found", id)
	}

	return nil
}
