package UserRepository

import (
	"strings"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateNewUser(request types.UserCreateRequest) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Create User")

	var user types.User
	hashedPassword, err := utils.EncryptPassword(request.Password)
	if err != nil {
		return user, err
	}

	query := `INSERT INTO users (email, name, hashed_password) VALUES ($1, $2, $3) RETURNING *`

	row := r.db.QueryRow(query, strings.ToLower(request.Email), request.Name, hashedPassword)
	err = utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
