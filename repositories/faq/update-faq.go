package FaqRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateFaq applies a partial update, keeping stored values for nil request
// fields.
func (r *Repository) UpdateFaq(id uuid.UUID, request types.FaqUpdateRequest) (types.Faq, error) {
	defer utils.TimeTrack(time.Now(), "Faq -> Update Faq")

	var faq types.Faq

	query := `
		UPDATE faqs SET
			category_id = COALESCE($1, category_id),
			question = COALESCE($2, question),
			answer = COALESCE($3, answer),
			sort_order = COALESCE($4, sort_order),
			updated_at = NOW()
		WHERE id = $5
		RETURNING *`

	row := r.db.QueryRow(query, request.CategoryID, request.Question, request.Answer, request.SortOrder, id)
	err := utils.ScanStructByDBTags(row, &faq)
	if err != nil {
		return faq, err
	}

	return faq, nil
}

// DeleteFaqByID is a soft delete via the is_active flag.
func (r *Repository) DeleteFaqByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Faq -> Delete Faq By ID")

	query := `UPDATE faqs SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark faq as deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("faq with ID %s not found", id)
	}

	return nil
}
