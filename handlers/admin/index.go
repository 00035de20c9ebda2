package AdminHandler

import (
	AdminRepository "github.com/clbasaran/backend-ozmevsim/repositories/admin"
	SessionRepository "github.com/clbasaran/backend-ozmevsim/repositories/session"
	"github.com/clbasaran/backend-ozmevsim/services/cache"
)

type Handler struct {
	AdminRepository   *AdminRepository.Repository
	SessionRepository *SessionRepository.Repository
	Cache             *cache.Cache
}

func NewHandler(r *AdminRepository.Repository, sr *SessionRepository.Repository, c *cache.Cache) *Handler {
	return &Handler{
		AdminRepository:   r,
		SessionRepository: sr,
		Cache:             c,
	}
}
