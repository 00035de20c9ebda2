package ProductHandler

import (
	ProductRepository "github.com/clbasaran/backend-ozmevsim/repositories/product"
	"github.com/clbasaran/backend-ozmevsim/services/cache"
)

type Handler struct {
	ProductRepository *ProductRepository.Repository
	Cache             *cache.Cache
}

func NewHandler(r *ProductRepository.Repository, c *cache.Cache) *Handler {
	return &Handler{
		ProductRepository: r,
		Cache:             c,
	}
}
