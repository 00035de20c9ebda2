package SessionRepository

import (
	"database/sql"
	"time"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) CreateSession(input types.SessionCreateInput) (types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Create Session")

	var session types.Session

	query := `INSERT INTO sessions (user_id, token, refresh_token, expires_at, user_agent, ip_address) VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`

	row := r.db.QueryRow(query,
		input.UserID,
		input.Token,
		input.RefreshToken,
		input.ExpiresAt,
		nullableString(input.UserAgent),
		nullableString(input.IPAddress),
	)

	err := utils.ScanStructByDBTags(row, &session)
	if err != nil {
		return session, err
	}

	return session, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
