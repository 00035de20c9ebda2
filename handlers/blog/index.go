package BlogHandler

import (
	BlogRepository "github.com/clbasaran/backend-ozmevsim/repositories/blog"
	"github.com/clbasaran/backend-ozmevsim/services/cache"
)

type Handler struct {
	BlogRepository *BlogRepository.Repository
	Cache          *cache.Cache
}

func NewHandler(r *BlogRepository.Repository, c *cache.Cache) *Handler {
	return &Handler{
		BlogRepository: r,
		Cache:          c,
	}
}
