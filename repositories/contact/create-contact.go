package ContactRepository

import (
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateContact(request types.ContactCreateRequest, ipAddress, userAgent string) (types.Contact, error) {
	defer utils.TimeTrack(time.Now(), "Contact -> Create Contact")

	var contact types.Contact

	query := `
		INSERT INTO contacts (name, email, phone, company, subject, message, ip_address, user_agent, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'website')
		RETURNING *`

	row := r.db.QueryRow(query,
		request.Name,
		request.Email,
		request.Phone,
		request.Company,
		request.Subject,
		request.Message,
		ipAddress,
		userAgent,
	)

	err := utils.ScanStructByDBTags(row, &contact)
	if err != nil {
		return contact, err
	}

	return contact, nil
}
