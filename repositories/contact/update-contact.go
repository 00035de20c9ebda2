package ContactRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// UpdateContact applies the admin triage fields, keeping stored values for
// nil request fields.
func (r *Repository) UpdateContact(id uuid.UUID, request types.ContactStatusUpdateRequest) (types.Contact, error) {
	defer utils.TimeTrack(time.Now(), "Contact -> Update Contact")

	var contact types.Contact

	query := `
		UPDATE contacts SET
			status = COALESCE($1, status),
			is_read = COALESCE($2, is_read),
			notes = COALESCE($3, notes),
			updated_at = NOW()
		WHERE id = $4
		RETURNING *`

	row := r.db.QueryRow(query, request.Status, request.IsRead, request.Notes, id)
	err := utils.ScanStructByDBTags(row, &contact)
	if err != nil {
		return contact, err
	}

	return contact, nil
}
