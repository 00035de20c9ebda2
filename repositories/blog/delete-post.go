package BlogRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

// DeletePostByID is a soft delete via the is_active flag.
func (r *Repository) DeletePostByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Blog -> Delete Post By ID")

	query := `UPDATE blog_posts SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark blog post as deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog post with ID %s not found", id)
	}

	return nil
}
