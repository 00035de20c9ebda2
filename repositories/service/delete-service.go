package ServiceRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

// DeleteServiceByID is a soft delete via the is_active flag.
func (r *Repository) DeleteServiceByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Service -> Delete Service By ID")

	query := `UPDATE services SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark service as deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("service with ID %s not found", id)
	}

	return nil
}
