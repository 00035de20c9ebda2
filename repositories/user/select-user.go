package UserRepository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectUserByEmail looks a user up by email. Emails are normalized to lower
// case on both write and read, so lookups are effectively case-insensitive.
func (r *Repository) SelectUserByEmail(email string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Email")

	var user types.User

	query := `SELECT * FROM users WHERE email = $1`

	row := r.db.QueryRow(query, strings.ToLower(email))
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}

func (r *Repository) SelectUserByID(id uuid.UUID) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By ID")

	var user types.User

	query := `SELECT * FROM users WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
