package ProductRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/utils"
)

// DeleteProductByID is a soft delete: the row stays, public listings filter on
// is_active.
func (r *Repository) DeleteProductByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Product -> Delete Product By ID")

	query := `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark product as deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found", id)
	}

	return nil
}
