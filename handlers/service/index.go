package ServiceHandler

import (
	ServiceRepository "github.com/clbasaran/backend-ozmevsim/repositories/service"
	"github.com/clbasaran/backend-ozmevsim/services/cache"
)

type Handler struct {
	ServiceRepository *ServiceRepository.Repository
	Cache             *cache.Cache
}

func NewHandler(r *ServiceRepository.Repository, c *cache.Cache) *Handler {
	return &Handler{
		ServiceRepository: r,
		Cache:             c,
	}
}
