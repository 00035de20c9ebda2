package BlogRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) UpdatePostStatus(id uuid.UUID, status types.BlogStatus) error {
	defer utils.TimeTrack(time.Now(), "Blog -> Update Post Status")

	query := `
		UPDATE blog_posts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	// Publishing stamps published_at once, re-publishing keeps the original date
	if status == types.BlogStatusPublished {
		query = `
			UPDATE blog_posts
			SET status = $1, updated_at = NOW(), published_at = COALESCE(published_at, NOW())
			WHERE id = $2
		`
	}

	result, err := r.db.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update blog status: %w", err)
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
