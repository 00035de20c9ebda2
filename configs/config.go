package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "Ozmevsim - Backend"

	// Session Rules
	ACCESS_TOKEN_NAME      = "access-token"
	ACCESS_TOKEN_DURATION  = 15 * time.Minute
	REFRESH_TOKEN_NAME     = "refresh-token"
	REFRESH_TOKEN_DURATION = 7 * 24 * time.Hour
	SESSION_DURATION       = 7 * 24 * time.Hour
	JWT_ISSUER             = "ozmevsim-backend"

	// Rate Limit Rules
	LOGIN_RATE_LIMIT   = 10
	CONTACT_RATE_LIMIT = 5
	RATE_LIMIT_WINDOW  = 1 * time.Minute

	// Cache Rules
	SITEMAP_CACHE_TTL   = 15 * time.Minute
	DASHBOARD_CACHE_TTL = 1 * time.Minute

	// Upload Rules
	UPLOAD_MAX_SIZE_BYTES = 10 << 20 // 10 MB
	PRESIGN_URL_DURATION  = 5 * time.Minute
)
