package FaqRepository

import (
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateFaq(request types.FaqCreateRequest) (types.Faq, error) {
	defer utils.TimeTrack(time.Now(), "Faq -> Create Faq")

	var faq types.Faq

	query := `INSERT INTO faqs (category_id, question, answer, sort_order) VALUES ($1, $2, $3, $4) RETURNING *`

	row := r.db.QueryRow(query, request.CategoryID, request.Question, request.Answer, request.SortOrder)
	err := utils.ScanStructByDBTags(row, &faq)
	if err != nil {
		return faq, err
	}

	return faq, nil
}
