package SessionRepository

import (
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// SelectSessionByAccessToken returns the live session row holding exactly this
// access token. Expired rows are treated as absent; no sweep is needed for
// correctness.
func (r *Repository) SelectSessionByAccessToken(token string) (types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Select Session By Access Token")

	var session types.Session

	query := `SELECT * FROM sessions WHERE token = $1 AND expires_at > NOW()`

	row := r.db.QueryRow(query, token)
	err := utils.ScanStructByDBTags(row, &session)
	if err != nil {
		return session, err
	}

	return session, nil
}

func (r *Repository) SelectSessionByRefreshToken(refreshToken string) (types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Select Session By Refresh Token")

	var session types.Session

	query := `SELECT * FROM sessions WHERE refresh_token = $1 AND expires_at > NOW()`

	row := r.db.QueryRow(query, refreshToken)
	err := utils.ScanStructByDBTags(row, &session)
	if err != nil {
		return session, err
	}

	return session, nil
}
