package FaqRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectFaqs(options types.FaqQueryOptions) ([]types.Faq, int, error) {
	defer utils.TimeTrack(time.Now(), "Faq -> Select Faqs")

	var conditions []string
	var params []any
	paramCounter := 1

	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(question ILIKE $%d OR answer ILIKE $%d)", paramCounter, paramCounter))
		params = append(params, "%"+options.Search+"%")
		paramCounter++
	}

	if options.CategoryID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", paramCounter))
		params = append(params, options.CategoryID)
		paramCounter++
	}

	if options.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", paramCounter))
		params = append(params, *options.Active)
		paramCounter++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM faqs" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("faq count query failed: %w", err)
	}

	query := "SELECT * FROM faqs" + whereClause + " ORDER BY sort_order ASC"

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
		return nil, 0, fmt.Errorf("faq query failed: %w", err)
	}
	defer rows.Close()

	var faqs []types.Faq

	for rows.Next() {
		var faq types.Faq
		if err := utils.ScanStructByDBTagsForRows(rows, &faq); err != nil {
			return nil, 0, fmt.Errorf("error scanning faq row: %w", err)
		}
		faqs = append(faqs, faq)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through faqs: %w", err)
	}

	return faqs, total, nil
}
