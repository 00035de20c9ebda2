package ContactRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectContacts(options types.ContactQueryOptions) ([]types.Contact, int, error) {
	defer utils.TimeTrack(time.Now(), "Contact -> Select Contacts")

	var conditions []string
	var params []any
	paramCounter := 1

	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d OR company ILIKE $%d)",
			paramCounter, paramCounter, paramCounter, paramCounter, paramCounter))
		params = append(params, "%"+options.Search+"%")
		paramCounter++
	}

	if options.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramCounter))
		params = append(params, options.Status)
		paramCounter++
	}

	if options.IsRead != nil {
		conditions = append(conditions, fmt.Sprintf("is_read = $%d", paramCounter))
		params = append(params, *options.IsRead)
		paramCounter++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM contacts" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contact count query failed: %w", err)
	}

	query := "SELECT * FROM contacts" + whereClause + " ORDER BY created_at DESC"

	if options.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramCounter)
		params = append(params, options.Limit)
		paramCounter++

		if options.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", paramCounter)
			params = append(params, options.Offset)
		}
	}

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("contact query failed: %w", err)
	}
	defer rows.Close()

	var contacts []types.Contact

	for rows.Next() {
		var contact types.Contact
		if err := utils.ScanStructByDBTagsForRows(rows, &contact); err != nil {
			return nil, 0, fmt.Errorf("error scanning contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through contacts: %w", err)
	}

	return contacts, total, nil
}

func (r *Repository) CountByStatus(status types.ContactStatus) (int, error) {
	defer utils.TimeTrack(time.Now(), "Contact -> Count By Status")

	var count int
	query := `SELECT COUNT(*) FROM contacts WHERE status = $1`

	err := r.db.QueryRow(query, status).Scan(&count)
	return count, err
}
